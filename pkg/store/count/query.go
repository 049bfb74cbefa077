package count

import (
	"context"
	"errors"
)

// ErrMissingTenant is returned for a query without a tenant. Implementations
// must reject such queries before touching the backend.
var ErrMissingTenant = errors.New("count query requires a tenant id")

type Table string

const (
	TableDocuments Table = "documents"
	TableTasks     Table = "tasks"
	TableExports   Table = "exports"
)

const (
	ColumnTenantID  = "tenant_id"
	ColumnStatus    = "status"
	ColumnSource    = "source"
	ColumnExpiresAt = "expires_at"
	ColumnDueAt     = "due_at"
	ColumnCreatedAt = "created_at"
)

type Op int

const (
	OpEq Op = iota
	OpIn
	OpLt
	OpLte
	OpGte
	OpNotNull
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpIn:
		return "in"
	case OpLt:
		return "lt"
	case OpLte:
		return "lte"
	case OpGte:
		return "gte"
	case OpNotNull:
		return "not_null"
	default:
		return "unknown"
	}
}

// Filter is a single predicate. Value is ignored for OpNotNull and must be a
// []string for OpIn.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Query describes a count over one table. All filters are AND-ed together with
// the implicit tenant predicate.
type Query struct {
	Name     string
	Table    Table
	TenantID string
	Filters  []Filter
}

func (q Query) Validate() error {
	if q.TenantID == "" {
		return ErrMissingTenant
	}
	if q.Table == "" {
		return errors.New("count query requires a table")
	}
	return nil
}

type Store interface {
	Count(ctx context.Context, q Query) (int64, error)
}

func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

func In(column string, values ...string) Filter {
	return Filter{Column: column, Op: OpIn, Value: values}
}

func Lt(column string, value any) Filter {
	return Filter{Column: column, Op: OpLt, Value: value}
}

func Lte(column string, value any) Filter {
	return Filter{Column: column, Op: OpLte, Value: value}
}

func Gte(column string, value any) Filter {
	return Filter{Column: column, Op: OpGte, Value: value}
}

func NotNull(column string) Filter {
	return Filter{Column: column, Op: OpNotNull}
}

// Between is inclusive on both ends.
func Between(column string, from, to any) []Filter {
	return []Filter{Gte(column, from), Lte(column, to)}
}
