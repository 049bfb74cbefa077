package sql

import (
	"database/sql"
	"fmt"

	"github.com/boerenkompas/dashboard/pkg/store/duckdb"
	dbsql "github.com/databricks/databricks-sql-go"
	_ "github.com/lib/pq"
	sf "github.com/snowflakedb/gosnowflake"
)

const (
	DriverPostgres   = "postgres"
	DriverDuckDB     = "duckdb"
	DriverSnowflake  = "snowflake"
	DriverDatabricks = "databricks"
)

type DatabricksSettings struct {
	Host     string
	Port     int
	HTTPPath string
	Token    string
}

type Settings struct {
	Driver     string
	DSN        string // postgres
	Path       string // duckdb
	Snowflake  *sf.Config
	Databricks DatabricksSettings
}

// Open connects to the configured backend and reports which placeholder
// dialect its SQL must use.
func Open(settings Settings) (*sql.DB, Dialect, error) {
	switch settings.Driver {
	case DriverPostgres:
		if settings.DSN == "" {
			return nil, 0, fmt.Errorf("postgres driver requires a dsn")
		}
		db, err := sql.Open("postgres", settings.DSN)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to open postgres: %w", err)
		}
		return db, DialectDollar, nil

	case DriverDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.Path})
		if err != nil {
			return nil, 0, fmt.Errorf("failed to open duckdb: %w", err)
		}
		return db, DialectQuestion, nil

	case DriverSnowflake:
		if settings.Snowflake == nil {
			return nil, 0, fmt.Errorf("snowflake driver requires snowflake settings")
		}
		dsn, err := sf.DSN(settings.Snowflake)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create snowflake dsn: %w", err)
		}
		db, err := sql.Open("snowflake", dsn)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to open snowflake: %w", err)
		}
		return db, DialectQuestion, nil

	case DriverDatabricks:
		d := settings.Databricks
		connector, err := dbsql.NewConnector(
			dbsql.WithServerHostname(d.Host),
			dbsql.WithPort(d.Port),
			dbsql.WithHTTPPath(d.HTTPPath),
			dbsql.WithAccessToken(d.Token),
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create databricks connector: %w", err)
		}
		return sql.OpenDB(connector), DialectQuestion, nil

	default:
		return nil, 0, fmt.Errorf("unsupported database driver: %q", settings.Driver)
	}
}
