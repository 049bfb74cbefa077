package commands

import (
	"fmt"
	"os"

	"github.com/boerenkompas/dashboard/pkg/models/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type SeedCmd struct {
	file    string
	connect Connector
}

func NewSeedCmd(connect Connector) *cobra.Command {
	sc := &SeedCmd{connect: connect}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture records into the embedded database",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.file, "file", "", "Path to a YAML fixtures file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, _ []string) error {
	fixtures, err := LoadFixtures(sc.file)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := sc.connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer session.Close()

	if session.Records == nil {
		return fmt.Errorf("seeding is only supported for the duckdb driver")
	}

	if err := session.Records.Seed(ctx, fixtures); err != nil {
		return fmt.Errorf("failed to seed fixtures: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d documents, %d tasks, %d exports, %d members\n",
		len(fixtures.Documents), len(fixtures.Tasks), len(fixtures.Exports), len(fixtures.Members))
	return nil
}

// LoadFixtures parses a fixtures file and assigns ids to records that have none.
func LoadFixtures(path string) (store.Fixtures, error) {
	var fixtures store.Fixtures

	data, err := os.ReadFile(path)
	if err != nil {
		return fixtures, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return fixtures, fmt.Errorf("failed to parse fixtures file: %w", err)
	}

	for i := range fixtures.Documents {
		if fixtures.Documents[i].ID == "" {
			fixtures.Documents[i].ID = uuid.NewString()
		}
	}
	for i := range fixtures.Tasks {
		if fixtures.Tasks[i].ID == "" {
			fixtures.Tasks[i].ID = uuid.NewString()
		}
	}
	for i := range fixtures.Exports {
		if fixtures.Exports[i].ID == "" {
			fixtures.Exports[i].ID = uuid.NewString()
		}
	}
	return fixtures, nil
}
