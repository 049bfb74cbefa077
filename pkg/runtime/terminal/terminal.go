package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/boerenkompas/dashboard/pkg/config"
	"github.com/boerenkompas/dashboard/pkg/runtime/terminal/commands"
	"github.com/boerenkompas/dashboard/pkg/runtime/terminal/export"
	"github.com/boerenkompas/dashboard/pkg/services/kpi"
	"github.com/boerenkompas/dashboard/pkg/store/duckdb/records"
	sqlstore "github.com/boerenkompas/dashboard/pkg/store/sql"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	cfgPath  string
	connect  commands.Connector
	reporter *export.Reporter
	logger   zerolog.Logger
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI. Connect overrides how the CLI
// reaches the store; by default it opens the store named in the config file.
type Options struct {
	Output  io.Writer
	Logger  *zerolog.Logger
	Connect commands.Connector
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		connect:  opts.Connect,
		reporter: export.NewReporter(opts.Output),
		logger:   zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	if opts.Logger != nil {
		cli.logger = *opts.Logger
	}
	if cli.connect == nil {
		cli.connect = cli.connectFromConfig
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

// SetArgs is used by tests and wrappers to run a command without os.Args.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "boerenkompas",
		Short:         "Dashboard KPI tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to the YAML config file")

	cmd.AddCommand(commands.NewKpisCmd(cli.connect, cli.reporter))
	cmd.AddCommand(commands.NewSnapshotCmd(cli.connect))
	cmd.AddCommand(commands.NewSeedCmd(cli.connect))

	return cmd
}

func (cli *CLI) connectFromConfig(_ context.Context) (*commands.Session, error) {
	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		return nil, err
	}

	db, dialect, err := sqlstore.Open(cfg.StoreSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	counts, err := sqlstore.NewCountStore(db, dialect)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create count store: %w", err)
	}

	session := &commands.Session{
		KPI:   kpi.NewService(counts, kpi.Options{Environment: cfg.Environment}),
		Close: db.Close,
	}

	if cfg.Database.Driver == sqlstore.DriverDuckDB {
		session.Records, err = records.NewStore(db)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create record store: %w", err)
		}
	}
	return session, nil
}
