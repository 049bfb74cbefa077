package records

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
	"github.com/boerenkompas/dashboard/pkg/models/store"
	"github.com/boerenkompas/dashboard/pkg/store/duckdb"
	"github.com/rs/zerolog"
)

// Store writes tenant records into the embedded database. Every Add* call
// joins the transaction carried by ctx, if any.
type Store interface {
	AddDocuments(ctx context.Context, docs []store.Document) error
	AddTasks(ctx context.Context, tasks []store.Task) error
	AddExports(ctx context.Context, exports []store.Export) error
	AddMembers(ctx context.Context, members []store.TenantMember) error
	// Seed inserts all fixtures in a single transaction.
	Seed(ctx context.Context, fixtures store.Fixtures) error
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

func (s *recordStore) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx.PrepareContext(ctx, query)
	}
	return s.db.PrepareContext(ctx, query)
}

func (s *recordStore) insert(ctx context.Context, query string, n int, args func(i int) ([]any, error)) error {
	if n == 0 {
		return nil
	}

	stmt, err := s.prepare(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		values, err := args(i)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}
	return nil
}

func (s *recordStore) AddDocuments(ctx context.Context, docs []store.Document) error {
	query := `
		INSERT INTO documents (id, tenant_id, title, status, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	return s.insert(ctx, query, len(docs), func(i int) ([]any, error) {
		d := docs[i]
		if !domain.DocumentStatus(d.Status).Valid() {
			return nil, fmt.Errorf("document %s: invalid status %q", d.ID, d.Status)
		}
		return []any{d.ID, d.TenantID, d.Title, d.Status, nullableTime(d.ExpiresAt), d.CreatedAt}, nil
	})
}

func (s *recordStore) AddTasks(ctx context.Context, tasks []store.Task) error {
	query := `
		INSERT INTO tasks (id, tenant_id, title, status, source, due_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	return s.insert(ctx, query, len(tasks), func(i int) ([]any, error) {
		t := tasks[i]
		if !domain.TaskStatus(t.Status).Valid() {
			return nil, fmt.Errorf("task %s: invalid status %q", t.ID, t.Status)
		}
		if !domain.TaskSource(t.Source).Valid() {
			return nil, fmt.Errorf("task %s: invalid source %q", t.ID, t.Source)
		}
		return []any{t.ID, t.TenantID, t.Title, t.Status, t.Source, nullableTime(t.DueAt), t.CreatedAt}, nil
	})
}

func (s *recordStore) AddExports(ctx context.Context, exports []store.Export) error {
	query := `
		INSERT INTO exports (id, tenant_id, kind, created_at)
		VALUES (?, ?, ?, ?)`

	return s.insert(ctx, query, len(exports), func(i int) ([]any, error) {
		e := exports[i]
		return []any{e.ID, e.TenantID, e.Kind, e.CreatedAt}, nil
	})
}

func (s *recordStore) AddMembers(ctx context.Context, members []store.TenantMember) error {
	query := `
		INSERT INTO tenant_members (user_id, tenant_id, is_active, created_at)
		VALUES (?, ?, ?, ?)`

	return s.insert(ctx, query, len(members), func(i int) ([]any, error) {
		m := members[i]
		return []any{m.UserID, m.TenantID, m.IsActive, m.CreatedAt}, nil
	})
}

func (s *recordStore) Seed(ctx context.Context, fixtures store.Fixtures) error {
	err := duckdb.InTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.AddDocuments(ctx, fixtures.Documents); err != nil {
			return fmt.Errorf("seed documents: %w", err)
		}
		if err := s.AddTasks(ctx, fixtures.Tasks); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
		if err := s.AddExports(ctx, fixtures.Exports); err != nil {
			return fmt.Errorf("seed exports: %w", err)
		}
		if err := s.AddMembers(ctx, fixtures.Members); err != nil {
			return fmt.Errorf("seed members: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Int("documents", len(fixtures.Documents)).
		Int("tasks", len(fixtures.Tasks)).
		Int("exports", len(fixtures.Exports)).
		Int("members", len(fixtures.Members)).
		Msg("fixtures seeded")
	return nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
