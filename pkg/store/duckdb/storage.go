package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const DocumentsTableSchema = `
	CREATE TABLE IF NOT EXISTS documents (
		id VARCHAR NOT NULL,
		tenant_id VARCHAR NOT NULL,
		title VARCHAR,
		status VARCHAR NOT NULL,
		expires_at TIMESTAMP NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (tenant_id, id)
	);
`

const TasksTableSchema = `
	CREATE TABLE IF NOT EXISTS tasks (
		id VARCHAR NOT NULL,
		tenant_id VARCHAR NOT NULL,
		title VARCHAR,
		status VARCHAR NOT NULL,
		source VARCHAR NOT NULL,
		due_at TIMESTAMP NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (tenant_id, id)
	);
`

const ExportsTableSchema = `
	CREATE TABLE IF NOT EXISTS exports (
		id VARCHAR NOT NULL,
		tenant_id VARCHAR NOT NULL,
		kind VARCHAR,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (tenant_id, id)
	);
`

const TenantMembersTableSchema = `
	CREATE TABLE IF NOT EXISTS tenant_members (
		user_id VARCHAR NOT NULL,
		tenant_id VARCHAR NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, tenant_id)
	);
`

var bootQueries = []string{
	DocumentsTableSchema,
	TasksTableSchema,
	ExportsTableSchema,
	TenantMembersTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return sql.OpenDB(c), nil
}
