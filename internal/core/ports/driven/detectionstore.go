package driven

import "github.com/slotlab/slotcheck-cli/internal/core/domain"

// DetectionStore holds the current image's detection pass: a mapping of
// slot index to a detection or an empty-cell marker. It is populated by an
// input adapter when an image is loaded or re-analysed and replaced
// wholesale; core services only read it.
type DetectionStore interface {
	// Get returns the entry for a slot index.
	Get(slotIndex int) (*domain.SlotDetection, bool)

	// List returns all entries. Order is unspecified; callers that need
	// slot order must sort explicitly.
	List() []domain.SlotDetection

	// Size returns the number of entries, counting empty markers.
	Size() int

	// ImagePath returns the path of the loaded image, or "" when no
	// pass has been loaded.
	ImagePath() string

	// Generation increments every time the pass is replaced. Sessions
	// snapshot it at entry to detect stale passes.
	Generation() uint64
}

// DetectionStoreWriter is the write side of a detection store, used only
// by input adapters. It is a separate interface so core services cannot
// accidentally mutate the pass.
type DetectionStoreWriter interface {
	// Replace swaps in a new detection pass for the given image,
	// discarding the previous one and bumping the generation.
	Replace(imagePath string, slots []domain.SlotDetection)

	// ImagePath returns the path of the loaded image, or "" when no
	// pass has been loaded. Input adapters use it to tell an image
	// switch from a re-analysis of the same image.
	ImagePath() string
}
