package commands

import (
	"encoding/json"
	"fmt"

	"github.com/boerenkompas/dashboard/pkg/adapters"
	"github.com/boerenkompas/dashboard/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type KpisCmd struct {
	tenantID string
	format   string
	connect  Connector
	reporter *export.Reporter
}

func NewKpisCmd(connect Connector, reporter *export.Reporter) *cobra.Command {
	kc := &KpisCmd{connect: connect, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Print the dashboard KPIs of a tenant",
		RunE:  kc.run,
	}

	cmd.Flags().StringVar(&kc.tenantID, "tenant", "", "Tenant id (uuid)")
	cmd.Flags().StringVar(&kc.format, "format", formatTable, "Output format: table or json")

	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func (kc *KpisCmd) run(cmd *cobra.Command, _ []string) error {
	if kc.format != formatTable && kc.format != formatJSON {
		return fmt.Errorf("unsupported format %q, expected %s or %s", kc.format, formatTable, formatJSON)
	}
	tenantID, err := parseTenant(kc.tenantID)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := kc.connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer session.Close()

	result, err := session.KPI.GetDashboardKpis(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to load dashboard KPIs: %w", err)
	}

	if kc.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(adapters.MapKPIsDomainToApi(result.KPIs))
	}
	return kc.reporter.Handle(result)
}
