package domain

import "time"

// ResolutionMatch is the tier a stored calibration preset matched a query
// resolution at.
type ResolutionMatch string

const (
	// MatchExact means a preset exists for the exact width and height.
	MatchExact ResolutionMatch = "exact"

	// MatchScaled means a preset with the same aspect ratio was found
	// and can be scaled to fit.
	MatchScaled ResolutionMatch = "scaled"

	// MatchDefault means no usable preset exists; callers fall back to
	// built-in grid defaults.
	MatchDefault ResolutionMatch = "default"
)

// IsValid returns true if the match tier is a known value.
func (m ResolutionMatch) IsValid() bool {
	switch m {
	case MatchExact, MatchScaled, MatchDefault:
		return true
	default:
		return false
	}
}

// CalibrationPreset stores the inventory grid geometry calibrated for one
// screen resolution.
type CalibrationPreset struct {
	// ID is the unique identifier for the preset.
	ID string

	// Width and Height are the screen resolution the preset was
	// calibrated at.
	Width  int
	Height int

	// GridLeft and GridTop are the pixel offsets of the first cell.
	GridLeft int
	GridTop  int

	// CellWidth and CellHeight are the pixel dimensions of one cell.
	CellWidth  int
	CellHeight int

	// Columns and Rows are the grid dimensions in cells.
	Columns int
	Rows    int

	// CreatedAt is when the preset was saved.
	CreatedAt time.Time
}

// AspectRatio returns width over height, or 0 for degenerate presets.
func (p CalibrationPreset) AspectRatio() float64 {
	if p.Height == 0 {
		return 0
	}
	return float64(p.Width) / float64(p.Height)
}
