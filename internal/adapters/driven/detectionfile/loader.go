package detectionfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/slotlab/slotcheck-cli/internal/core/domain"
	"github.com/slotlab/slotcheck-cli/internal/core/ports/driven"
	"github.com/slotlab/slotcheck-cli/internal/logger"
)

// passFile mirrors the JSON the upstream CV pipeline writes per image.
type passFile struct {
	Image  string     `json:"image"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Slots  []slotJSON `json:"slots"`
}

type slotJSON struct {
	Index        int       `json:"index"`
	Empty        bool      `json:"empty"`
	Item         string    `json:"item"`
	Confidence   float64   `json:"confidence"`
	Alternatives []altJSON `json:"alternatives"`
}

type altJSON struct {
	Item       string  `json:"item"`
	Confidence float64 `json:"confidence"`
}

// Load parses a detection pass file and replaces the store's contents.
// When the pass is for a different image than the one loaded, the
// correction ledger is cleared first: corrections are keyed by slot
// index and only meaningful against the image they were recorded for.
// A re-analysis of the same image keeps them.
func Load(path string, store driven.DetectionStoreWriter, ledger driven.CorrectionLedger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading detections file: %w", err)
	}

	var pass passFile
	if err := json.Unmarshal(data, &pass); err != nil {
		return fmt.Errorf("parsing detections file %s: %w", path, err)
	}
	if pass.Image == "" {
		return fmt.Errorf("%w: detections file %s has no image path", domain.ErrInvalidInput, path)
	}

	slots, err := convertSlots(pass.Slots)
	if err != nil {
		return fmt.Errorf("detections file %s: %w", path, err)
	}

	if prev := store.ImagePath(); prev != "" && prev != pass.Image {
		logger.Info("image changed from %s to %s, dropping %d corrections", prev, pass.Image, ledger.Size())
		ledger.Clear()
	}

	store.Replace(pass.Image, slots)
	logger.Info("loaded %d slots for %s from %s", len(slots), pass.Image, path)
	return nil
}

func convertSlots(raw []slotJSON) ([]domain.SlotDetection, error) {
	slots := make([]domain.SlotDetection, 0, len(raw))
	seen := make(map[int]bool, len(raw))
	for _, s := range raw {
		if s.Index < 0 {
			return nil, fmt.Errorf("%w: negative slot index %d", domain.ErrInvalidInput, s.Index)
		}
		if seen[s.Index] {
			return nil, fmt.Errorf("%w: duplicate slot index %d", domain.ErrInvalidInput, s.Index)
		}
		seen[s.Index] = true

		if s.Empty {
			slots = append(slots, domain.SlotDetection{
				SlotIndex: s.Index,
				Kind:      domain.KindEmpty,
			})
			continue
		}

		if s.Item == "" {
			return nil, fmt.Errorf("%w: slot %d has neither item nor empty marker", domain.ErrInvalidInput, s.Index)
		}
		if s.Confidence < 0 || s.Confidence > 1 {
			return nil, fmt.Errorf("%w: slot %d confidence %f out of range", domain.ErrInvalidInput, s.Index, s.Confidence)
		}

		alts := make([]domain.Alternative, 0, len(s.Alternatives))
		for _, a := range s.Alternatives {
			alts = append(alts, domain.Alternative{ItemName: a.Item, Confidence: a.Confidence})
		}
		// The pipeline writes alternatives ranked, but never trust file order
		sort.SliceStable(alts, func(i, j int) bool {
			return alts[i].Confidence > alts[j].Confidence
		})

		slots = append(slots, domain.SlotDetection{
			SlotIndex: s.Index,
			Kind:      domain.KindDetection,
			Detection: domain.Detection{
				ItemName:     s.Item,
				Confidence:   s.Confidence,
				Alternatives: alts,
			},
		})
	}
	return slots, nil
}
