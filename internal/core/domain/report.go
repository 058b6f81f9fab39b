package domain

// RankedCount is one bucket of a grouped count, keyed by display name.
type RankedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VisitorStats is the recomputed-on-demand statistics view over the visitor
// collection.
type VisitorStats struct {
	TotalToday         int           `json:"totalToday"`
	TotalThisWeek      int           `json:"totalThisWeek"`
	TotalThisMonth     int           `json:"totalThisMonth"`
	CurrentlyCheckedIn int           `json:"currentlyCheckedIn"`
	PerService         []RankedCount `json:"perService"`
	PerEmployee        []RankedCount `json:"perEmployee"`
	// AverageDurationMinutes covers checked-out visits only; visits still in
	// progress are excluded, not counted as zero.
	AverageDurationMinutes float64 `json:"averageDurationMinutes"`
}

// DailyReport is the canonical reporting unit for one calendar day.
type DailyReport struct {
	Date                   string        `json:"date"` // DateLayout
	TotalVisitors          int           `json:"totalVisitors"`
	TopServices            []RankedCount `json:"topServices"`
	TopEmployees           []RankedCount `json:"topEmployees"`
	AverageDurationMinutes float64       `json:"averageDurationMinutes"`
}
