package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
)

type TableConfig struct {
	LabelWidth  int
	ValueWidth  int
	UnitWidth   int
	StatusWidth int
	TrendWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth:  28,
		ValueWidth:  8,
		UnitWidth:   12,
		StatusWidth: 8,
		TrendWidth:  7,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type kpiTable struct {
	TenantID string
	Result   domain.KPIResult
}

func (c *Reporter) Handle(result domain.KPIResult) error {
	funcMap := template.FuncMap{
		"formatRow": func(label string, value any, unit, status, trend string) string {
			return fmt.Sprintf("| %-*s | %*v | %-*s | %-*s | %*s |",
				c.config.LabelWidth, label,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unit,
				c.config.StatusWidth, status,
				c.config.TrendWidth, trend)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.TrendWidth+2))
		},
		"trend": formatTrend,
	}

	tmpl := `Dashboard KPIs for tenant {{.TenantID}}
Generated: {{.Result.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} (query {{.Result.QueryTime.Milliseconds}} ms)

{{separator}}
{{formatRow "KPI" "Value" "Unit" "Status" "Trend"}}
{{separator}}
{{range .Result.KPIs}}{{formatRow .Label .Value .Unit (printf "%s" .Status) (trend .Trend)}}
{{end}}{{separator}}
`

	t, err := template.New("kpis").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, kpiTable{TenantID: result.TenantID, Result: result})
}

func formatTrend(trend *int) string {
	if trend == nil {
		return "-"
	}
	return fmt.Sprintf("%+d%%", *trend)
}
