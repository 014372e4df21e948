package repo

// Keys understood by location listing filters.
const (
	FilterIsActive = "is_active"
	// FilterBox holds a geo.Box.
	FilterBox = "bbox"
)
