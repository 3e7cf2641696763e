package dto

// DashboardStatsResponse aggregates entity counts for the dashboard.
type DashboardStatsResponse struct {
	Students   int64 `json:"students"`
	Professors int64 `json:"professors"`
	Subjects   int64 `json:"subjects"`
}
