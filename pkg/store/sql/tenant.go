package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var ErrNoMembership = errors.New("no active tenant membership")

type TenantStore struct {
	db      *sql.DB
	dialect Dialect
}

func NewTenantStore(db *sql.DB, dialect Dialect) (*TenantStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &TenantStore{db: db, dialect: dialect}, nil
}

// ActiveTenantID returns the oldest active membership of the user.
func (s *TenantStore) ActiveTenantID(ctx context.Context, userID string) (string, error) {
	b := &builder{dialect: s.dialect}
	query := fmt.Sprintf(`
		SELECT tenant_id
		FROM tenant_members
		WHERE user_id = %s AND is_active = TRUE
		ORDER BY created_at ASC
		LIMIT 1`, b.bind(userID))

	var tenantID string
	err := s.db.QueryRowContext(ctx, query, b.args...).Scan(&tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoMembership
	}
	if err != nil {
		return "", fmt.Errorf("tenant membership query failed: %w", err)
	}
	return tenantID, nil
}
