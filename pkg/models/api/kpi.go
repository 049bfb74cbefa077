package api

import "time"

type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

type KPI struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Value  int64  `json:"value"`
	Unit   string `json:"unit"`
	Status Status `json:"status"`
	Trend  *int   `json:"trend,omitempty"`
}

type Meta struct {
	TenantID    string    `json:"tenantId"`
	GeneratedAt time.Time `json:"generatedAt"`
	QueryTimeMs int64     `json:"queryTimeMs"`
	APITimeMs   int64     `json:"apiTimeMs"`
}

type FullResponse struct {
	Data []KPI `json:"data"`
	Meta Meta  `json:"meta"`
}

type RawCounts struct {
	TotalDocuments         int64 `json:"totalDocuments"`
	DocumentsAttention     int64 `json:"documentsAttention"`
	DocumentsExpiredByDate int64 `json:"documentsExpiredByDate"`
	TasksOverdue           int64 `json:"tasksOverdue"`
	TasksUpcoming7d        int64 `json:"tasksUpcoming7d"`
	MissingItemsOpen       int64 `json:"missingItemsOpen"`
	ExportsThisMonth       int64 `json:"exportsThisMonth"`
	ExportsPrevMonth       int64 `json:"exportsPrevMonth"`
	DocumentsAtMonthStart  int64 `json:"documentsAtMonthStart"`
}

type DateBoundaries struct {
	Now            time.Time `json:"now"`
	TodayStart     time.Time `json:"todayStart"`
	TodayEnd       time.Time `json:"todayEnd"`
	SevenDaysEnd   time.Time `json:"sevenDaysEnd"`
	MonthStart     time.Time `json:"monthStart"`
	MonthEnd       time.Time `json:"monthEnd"`
	PrevMonthStart time.Time `json:"prevMonthStart"`
	PrevMonthEnd   time.Time `json:"prevMonthEnd"`
	TodayDate      string    `json:"todayDate"`
}

type SnapshotMeta struct {
	TenantID    string    `json:"tenantId"`
	GeneratedAt time.Time `json:"generatedAt"`
	QueryTimeMs int64     `json:"queryTimeMs"`
	Environment string    `json:"environment"`
}

type Snapshot struct {
	KPIs       []KPI          `json:"kpis"`
	RawCounts  RawCounts      `json:"rawCounts"`
	Boundaries DateBoundaries `json:"boundaries"`
	Meta       SnapshotMeta   `json:"meta"`
}

type Error struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
