// Package domain defines the core business entities for slotcheck.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Detection: the upstream CV guess for one inventory slot
//   - Correction: a reviewer's recorded override for a slot
//   - EffectiveDetection: the name a slot represents after corrections
//   - Score: precision/recall/F1 agreement with ground truth
//   - BatchSlot: one entry in a batch-review session queue
//   - CalibrationPreset: a stored grid calibration keyed by resolution
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
