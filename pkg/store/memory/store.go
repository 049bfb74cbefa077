// Package memory implements count.Store over in-process records. It evaluates
// filters with the same semantics as the SQL store, NULL handling included,
// and is what the service and router tests run against.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/boerenkompas/dashboard/pkg/models/store"
	"github.com/boerenkompas/dashboard/pkg/store/count"
)

type row map[string]any

type Store struct {
	mu        sync.RWMutex
	documents []store.Document
	tasks     []store.Task
	exports   []store.Export
	failures  map[string]error
}

func NewStore() *Store {
	return &Store{failures: make(map[string]error)}
}

func (s *Store) AddDocuments(docs ...store.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, docs...)
}

func (s *Store) AddTasks(tasks ...store.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, tasks...)
}

func (s *Store) AddExports(exports ...store.Export) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exports = append(s.exports, exports...)
}

func (s *Store) AddFixtures(f store.Fixtures) {
	s.AddDocuments(f.Documents...)
	s.AddTasks(f.Tasks...)
	s.AddExports(f.Exports...)
}

// FailQuery makes every Count with the given query name return err.
func (s *Store) FailQuery(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[name] = err
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Count(ctx context.Context, q count.Query) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err, ok := s.failures[q.Name]; ok {
		return 0, err
	}

	rows, err := s.rows(q.Table)
	if err != nil {
		return 0, err
	}

	var n int64
	for _, r := range rows {
		if r[count.ColumnTenantID] != q.TenantID {
			continue
		}
		ok, err := matchAll(r, q.Filters)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", q.Name, err)
		}
		if ok {
			n++
		}
	}
	return n, nil
}

func (s *Store) rows(table count.Table) ([]row, error) {
	switch table {
	case count.TableDocuments:
		rows := make([]row, 0, len(s.documents))
		for _, d := range s.documents {
			rows = append(rows, row{
				count.ColumnTenantID:  d.TenantID,
				count.ColumnStatus:    d.Status,
				count.ColumnExpiresAt: nullableTime(d.ExpiresAt),
				count.ColumnCreatedAt: d.CreatedAt,
			})
		}
		return rows, nil
	case count.TableTasks:
		rows := make([]row, 0, len(s.tasks))
		for _, t := range s.tasks {
			rows = append(rows, row{
				count.ColumnTenantID:  t.TenantID,
				count.ColumnStatus:    t.Status,
				count.ColumnSource:    t.Source,
				count.ColumnDueAt:     nullableTime(t.DueAt),
				count.ColumnCreatedAt: t.CreatedAt,
			})
		}
		return rows, nil
	case count.TableExports:
		rows := make([]row, 0, len(s.exports))
		for _, e := range s.exports {
			rows = append(rows, row{
				count.ColumnTenantID:  e.TenantID,
				count.ColumnCreatedAt: e.CreatedAt,
			})
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unknown table: %s", table)
	}
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func matchAll(r row, filters []count.Filter) (bool, error) {
	for _, f := range filters {
		ok, err := match(r, f)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func match(r row, f count.Filter) (bool, error) {
	v, exists := r[f.Column]
	if !exists {
		return false, fmt.Errorf("unknown column: %s", f.Column)
	}

	if f.Op == count.OpNotNull {
		return v != nil, nil
	}
	// NULL never satisfies a comparison.
	if v == nil {
		return false, nil
	}

	switch f.Op {
	case count.OpIn:
		values, ok := f.Value.([]string)
		if !ok {
			return false, fmt.Errorf("column %s: in filter needs []string, got %T", f.Column, f.Value)
		}
		s, ok := v.(string)
		if !ok {
			return false, fmt.Errorf("column %s: in filter on non-string column", f.Column)
		}
		for _, candidate := range values {
			if candidate == s {
				return true, nil
			}
		}
		return false, nil
	case count.OpEq, count.OpLt, count.OpLte, count.OpGte:
		c, err := compare(v, f.Value)
		if err != nil {
			return false, fmt.Errorf("column %s: %w", f.Column, err)
		}
		switch f.Op {
		case count.OpEq:
			return c == 0, nil
		case count.OpLt:
			return c < 0, nil
		case count.OpLte:
			return c <= 0, nil
		default:
			return c >= 0, nil
		}
	default:
		return false, fmt.Errorf("unsupported operator: %s", f.Op)
	}
}

func compare(a, b any) (int, error) {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, fmt.Errorf("cannot compare string with %T", b)
		}
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		}
		return 0, nil
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, fmt.Errorf("cannot compare time with %T", b)
		}
		return av.Compare(bv), nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", a)
	}
}
