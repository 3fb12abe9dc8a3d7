package domain

type FleetStats struct {
	TotalTools      int `json:"total_tools" db:"total_tools"`
	ActiveTools     int `json:"active_tools" db:"active_tools"`
	NeedsSharpening int `json:"needs_sharpening" db:"needs_sharpening"`
	PendingRequests int `json:"pending_requests" db:"pending_requests"`
	QuotedRequests  int `json:"quoted_requests" db:"quoted_requests"`
}

type AdminStats struct {
	PendingRequests    int `json:"pending_requests" db:"pending_requests"`
	QuotedRequests     int `json:"quoted_requests" db:"quoted_requests"`
	CompletedThisMonth int `json:"completed_this_month" db:"completed_this_month"`
	TotalToolsManaged  int `json:"total_tools_managed" db:"total_tools_managed"`
}
