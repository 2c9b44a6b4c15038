package domain

// MaxQuickSelectAlternatives caps the ranked alternatives exposed for
// quick-selection during a batch session.
const MaxQuickSelectAlternatives = 6

// SlotKind distinguishes occupied slots from background cells.
type SlotKind int

const (
	// KindDetection marks a slot where the CV pass found an item.
	KindDetection SlotKind = iota

	// KindEmpty marks a slot the CV pass classified as background.
	KindEmpty
)

// String returns the string representation of the slot kind.
func (k SlotKind) String() string {
	switch k {
	case KindDetection:
		return "detection"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Alternative is a lower-ranked candidate for a detected slot.
type Alternative struct {
	// ItemName is the candidate item name.
	ItemName string

	// Confidence is the match confidence in [0,1].
	Confidence float64
}

// Detection is the upstream CV pass's guess for the item occupying a slot.
// It is immutable for the lifetime of an image's analysis pass and is
// replaced wholesale when a new image is loaded or re-analysed.
type Detection struct {
	// ItemName is the best-match item name.
	ItemName string

	// Confidence is the match confidence in [0,1].
	Confidence float64

	// Alternatives holds lower-ranked candidates sorted by
	// confidence descending.
	Alternatives []Alternative
}

// QuickSelectAlternatives returns the ranked alternatives truncated to at
// most MaxQuickSelectAlternatives entries.
func (d Detection) QuickSelectAlternatives() []Alternative {
	if len(d.Alternatives) <= MaxQuickSelectAlternatives {
		return d.Alternatives
	}
	return d.Alternatives[:MaxQuickSelectAlternatives]
}

// SlotDetection is one entry in a detection set: either a Detection or an
// empty-cell marker, addressed by its slot index.
type SlotDetection struct {
	// SlotIndex is the position in the inventory grid. Non-negative,
	// unique per image.
	SlotIndex int

	// Kind reports whether the slot holds a detection or was
	// classified as background.
	Kind SlotKind

	// Detection is the CV guess. Only meaningful when Kind is
	// KindDetection; the zero value otherwise.
	Detection Detection
}

// EffectiveDetection is the name a slot currently represents after applying
// any correction over the raw detection. It is derived and ephemeral:
// resolvers produce it on demand and nothing stores it.
type EffectiveDetection struct {
	// SlotIndex is the grid position this name applies to.
	SlotIndex int

	// ItemName is the asserted item name.
	ItemName string
}
