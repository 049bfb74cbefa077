package sql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/boerenkompas/dashboard/pkg/store/count"
)

// Dialect selects the bind-parameter syntax of the backend.
type Dialect int

const (
	// DialectQuestion uses ? placeholders (duckdb, snowflake, databricks).
	DialectQuestion Dialect = iota
	// DialectDollar uses $1, $2, ... placeholders (postgres).
	DialectDollar
)

// Only these tables and columns may appear in generated SQL.
var allowedColumns = map[count.Table]map[string]bool{
	count.TableDocuments: {
		count.ColumnStatus:    true,
		count.ColumnExpiresAt: true,
		count.ColumnCreatedAt: true,
	},
	count.TableTasks: {
		count.ColumnStatus:    true,
		count.ColumnSource:    true,
		count.ColumnDueAt:     true,
		count.ColumnCreatedAt: true,
	},
	count.TableExports: {
		count.ColumnCreatedAt: true,
	},
}

type CountStore struct {
	db      *sql.DB
	dialect Dialect
}

func NewCountStore(db *sql.DB, dialect Dialect) (*CountStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &CountStore{db: db, dialect: dialect}, nil
}

func (s *CountStore) Count(ctx context.Context, q count.Query) (int64, error) {
	query, args, err := BuildCountQuery(q, s.dialect)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s count query failed: %w", q.Name, err)
	}
	return n, nil
}

func (s *CountStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type builder struct {
	dialect Dialect
	args    []any
}

func (b *builder) bind(v any) string {
	b.args = append(b.args, v)
	if b.dialect == DialectDollar {
		return fmt.Sprintf("$%d", len(b.args))
	}
	return "?"
}

// BuildCountQuery renders q as a single SELECT COUNT(*) statement. The tenant
// predicate always comes first.
func BuildCountQuery(q count.Query, dialect Dialect) (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}
	columns, ok := allowedColumns[q.Table]
	if !ok {
		return "", nil, fmt.Errorf("unknown table: %s", q.Table)
	}

	b := &builder{dialect: dialect}
	conditions := []string{fmt.Sprintf("%s = %s", count.ColumnTenantID, b.bind(q.TenantID))}

	for _, f := range q.Filters {
		if !columns[f.Column] {
			return "", nil, fmt.Errorf("%s: unknown column %s.%s", q.Name, q.Table, f.Column)
		}

		switch f.Op {
		case count.OpEq:
			conditions = append(conditions, fmt.Sprintf("%s = %s", f.Column, b.bind(f.Value)))
		case count.OpLt:
			conditions = append(conditions, fmt.Sprintf("%s < %s", f.Column, b.bind(f.Value)))
		case count.OpLte:
			conditions = append(conditions, fmt.Sprintf("%s <= %s", f.Column, b.bind(f.Value)))
		case count.OpGte:
			conditions = append(conditions, fmt.Sprintf("%s >= %s", f.Column, b.bind(f.Value)))
		case count.OpNotNull:
			conditions = append(conditions, fmt.Sprintf("%s IS NOT NULL", f.Column))
		case count.OpIn:
			values, ok := f.Value.([]string)
			if !ok || len(values) == 0 {
				return "", nil, fmt.Errorf("%s: in filter on %s needs a non-empty []string", q.Name, f.Column)
			}
			placeholders := make([]string, 0, len(values))
			for _, v := range values {
				placeholders = append(placeholders, b.bind(v))
			}
			conditions = append(conditions, fmt.Sprintf("%s IN (%s)", f.Column, strings.Join(placeholders, ", ")))
		default:
			return "", nil, fmt.Errorf("%s: unsupported operator %s", q.Name, f.Op)
		}
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", q.Table, strings.Join(conditions, " AND "))
	return query, b.args, nil
}
