package services

import (
	"sort"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
)

// ResolveEffective merges the correction ledger over the detection pass
// into the labeling the reviewer currently asserts.
//
// For each slot in the detection store: a correction wins over the raw
// detection; a confirmed-empty correction yields no entry; an empty
// marker with no correction yields no entry. The result is recomputed on
// every call - either input may have changed - and is returned sorted by
// slot index so output is deterministic regardless of store iteration
// order.
func ResolveEffective(store driven.DetectionStore, ledger driven.CorrectionLedger) []domain.EffectiveDetection {
	slots := store.List()
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].SlotIndex < slots[j].SlotIndex
	})

	effective := make([]domain.EffectiveDetection, 0, len(slots))
	for _, slot := range slots {
		if c, ok := ledger.Get(slot.SlotIndex); ok {
			if c.CorrectedName == nil {
				continue // confirmed empty
			}
			effective = append(effective, domain.EffectiveDetection{
				SlotIndex: slot.SlotIndex,
				ItemName:  *c.CorrectedName,
			})
			continue
		}
		if slot.Kind == domain.KindEmpty {
			continue
		}
		effective = append(effective, domain.EffectiveDetection{
			SlotIndex: slot.SlotIndex,
			ItemName:  slot.Detection.ItemName,
		})
	}
	return effective
}

// EffectiveNames projects an effective labeling onto its name multiset.
func EffectiveNames(effective []domain.EffectiveDetection) []string {
	names := make([]string, 0, len(effective))
	for _, e := range effective {
		names = append(names, e.ItemName)
	}
	return names
}
