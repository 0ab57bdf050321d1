package dto

// StatsResponse contadores del panel admin.
type StatsResponse struct {
	TotalItems     int64 `json:"total_items"`
	AvailableItems int64 `json:"available_items"`
	Categories     int64 `json:"categories"`
}
