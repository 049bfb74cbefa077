package store

import "time"

type Document struct {
	ID        string     `yaml:"id"`
	TenantID  string     `yaml:"tenant_id"`
	Title     string     `yaml:"title"`
	Status    string     `yaml:"status"`
	ExpiresAt *time.Time `yaml:"expires_at"`
	CreatedAt time.Time  `yaml:"created_at"`
}

type Task struct {
	ID        string     `yaml:"id"`
	TenantID  string     `yaml:"tenant_id"`
	Title     string     `yaml:"title"`
	Status    string     `yaml:"status"`
	Source    string     `yaml:"source"`
	DueAt     *time.Time `yaml:"due_at"`
	CreatedAt time.Time  `yaml:"created_at"`
}

type Export struct {
	ID        string    `yaml:"id"`
	TenantID  string    `yaml:"tenant_id"`
	Kind      string    `yaml:"kind"`
	CreatedAt time.Time `yaml:"created_at"`
}

type TenantMember struct {
	UserID    string    `yaml:"user_id"`
	TenantID  string    `yaml:"tenant_id"`
	IsActive  bool      `yaml:"is_active"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Fixtures is the on-disk layout consumed by the seed command.
type Fixtures struct {
	Documents []Document     `yaml:"documents"`
	Tasks     []Task         `yaml:"tasks"`
	Exports   []Export       `yaml:"exports"`
	Members   []TenantMember `yaml:"members"`
}
