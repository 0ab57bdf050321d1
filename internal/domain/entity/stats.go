package entity

// MenuStats contadores del panel de administración.
type MenuStats struct {
	TotalItems     int64
	AvailableItems int64
	Categories     int64
}
