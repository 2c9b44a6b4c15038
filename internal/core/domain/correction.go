package domain

// Correction is a reviewer's recorded override for a single slot.
// At most one correction exists per slot; re-recording replaces the
// previous correction wholesale, never merges.
type Correction struct {
	// OriginalName is the CV pass's name for the slot at the time the
	// correction was recorded. Nil when the slot was an empty cell.
	OriginalName *string

	// OriginalConfidence is the CV confidence for OriginalName.
	// Zero when the slot was an empty cell.
	OriginalConfidence float64

	// CorrectedName is the reviewer's asserted name. Nil means the
	// reviewer confirmed the slot is empty.
	CorrectedName *string

	// Verified is true only when the reviewer accepted the detection
	// as-is (CorrectedName equals OriginalName) or confirmed an empty
	// cell (both nil). Applying an alternative name never sets it.
	Verified bool

	// FromEmpty is true when an item name was asserted over a slot the
	// CV pass classified as empty.
	FromEmpty bool
}

// IsConfirmedEmpty reports whether the reviewer asserted the slot holds
// no item.
func (c Correction) IsConfirmedEmpty() bool {
	return c.CorrectedName == nil
}

// AcceptDetection builds the correction recorded when a reviewer accepts
// a detection unchanged.
func AcceptDetection(d Detection) Correction {
	name := d.ItemName
	accepted := d.ItemName
	return Correction{
		OriginalName:       &name,
		OriginalConfidence: d.Confidence,
		CorrectedName:      &accepted,
		Verified:           true,
	}
}

// ConfirmEmpty builds the correction recorded when a reviewer confirms an
// empty cell.
func ConfirmEmpty() Correction {
	return Correction{Verified: true}
}

// OverrideEmpty builds the correction recorded when a reviewer marks a
// slot empty against the CV output. For a detected slot the original name
// and confidence are snapshotted; for an already-empty slot both stay zero.
func OverrideEmpty(slot SlotDetection) Correction {
	c := Correction{}
	if slot.Kind == KindDetection {
		name := slot.Detection.ItemName
		c.OriginalName = &name
		c.OriginalConfidence = slot.Detection.Confidence
	}
	return c
}

// OverrideName builds the correction recorded when a reviewer asserts
// itemName for a slot, typically by picking a ranked alternative.
func OverrideName(slot SlotDetection, itemName string) Correction {
	c := Correction{
		CorrectedName: &itemName,
		FromEmpty:     slot.Kind == KindEmpty,
	}
	if slot.Kind == KindDetection {
		name := slot.Detection.ItemName
		c.OriginalName = &name
		c.OriginalConfidence = slot.Detection.Confidence
	}
	return c
}
