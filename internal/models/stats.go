package models

// StatsRange names the window a completion series is computed over.
type StatsRange string

const (
	RangeToday     StatsRange = "today"
	RangeThisWeek  StatsRange = "this_week"
	RangeThisMonth StatsRange = "this_month"
	RangeThisYear  StatsRange = "this_year"
	RangeAllTime   StatsRange = "all_time"
)

// StatsBucket is one point of a completion series.
type StatsBucket struct {
	Label string
	Count int64
}

// CompletedTasks holds completion totals for every fixed window.
type CompletedTasks struct {
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"this_week"`
	ThisMonth int64 `json:"this_month"`
	ThisYear  int64 `json:"this_year"`
	AllTime   int64 `json:"all_time"`
}

// Stats is the result of aggregating one user's completions.
type Stats struct {
	Range          StatsRange
	Series         []StatsBucket
	CompletedTasks CompletedTasks
}
