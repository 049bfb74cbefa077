package domain

import "time"

type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Direction tells Classify which way a value improves.
type Direction int

const (
	LowerIsBetter Direction = iota
	HigherIsBetter
)

// Thresholds are inclusive bounds: for LowerIsBetter a value <= Good is good,
// <= Warning is warning, anything above is critical.
type Thresholds struct {
	Good    int64
	Warning int64
}

type KPIID string

const (
	KPITotalDocuments     KPIID = "total_documents"
	KPIDocumentsAttention KPIID = "documents_attention"
	KPITasksOverdue       KPIID = "tasks_overdue"
	KPITasksUpcoming7d    KPIID = "tasks_upcoming_7d"
	KPIMissingItemsOpen   KPIID = "missing_items_open"
	KPIExportsThisMonth   KPIID = "exports_this_month"
)

type KPI struct {
	ID     KPIID
	Label  string
	Value  int64
	Unit   string
	Status Status
	Trend  *int // percentage, nil when the KPI has no baseline
}

// RawCounts holds the result of every count query of a single computation.
// A query that failed is reported as zero.
type RawCounts struct {
	TotalDocuments         int64
	DocumentsAttention     int64
	DocumentsExpiredByDate int64
	TasksOverdue           int64
	TasksUpcoming7d        int64
	MissingItemsOpen       int64
	ExportsThisMonth       int64
	ExportsPrevMonth       int64
	DocumentsAtMonthStart  int64
}

// DateBoundaries are all derived from the same Now snapshot.
type DateBoundaries struct {
	Now            time.Time
	TodayStart     time.Time
	TodayEnd       time.Time
	SevenDaysEnd   time.Time
	MonthStart     time.Time
	MonthEnd       time.Time
	PrevMonthStart time.Time
	PrevMonthEnd   time.Time
	TodayDate      string // YYYY-MM-DD
}

type KPIResult struct {
	TenantID    string
	KPIs        []KPI
	GeneratedAt time.Time
	QueryTime   time.Duration
}

// Snapshot is the diagnostic view of a computation, meant for operators.
type Snapshot struct {
	TenantID    string
	KPIs        []KPI
	RawCounts   RawCounts
	Boundaries  DateBoundaries
	GeneratedAt time.Time
	QueryTime   time.Duration
	Environment string
}
