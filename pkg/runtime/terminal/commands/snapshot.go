package commands

import (
	"encoding/json"
	"fmt"

	"github.com/boerenkompas/dashboard/pkg/adapters"
	"github.com/spf13/cobra"
)

type SnapshotCmd struct {
	tenantID string
	connect  Connector
}

func NewSnapshotCmd(connect Connector) *cobra.Command {
	sc := &SnapshotCmd{connect: connect}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the KPI debug snapshot of a tenant as JSON",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.tenantID, "tenant", "", "Tenant id (uuid)")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func (sc *SnapshotCmd) run(cmd *cobra.Command, _ []string) error {
	tenantID, err := parseTenant(sc.tenantID)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := sc.connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer session.Close()

	snapshot, err := session.KPI.GetDebugSnapshot(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(adapters.MapSnapshotDomainToApi(snapshot))
}
