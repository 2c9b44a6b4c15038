// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DetectionStore: the per-image detection pass (read-only to core
//     services; replaced wholesale by the input adapter on image load)
//   - CorrectionLedger: the authoritative slot-to-correction mapping
//   - GroundTruthStore: reference labelings used for scoring
//   - PresetStore: calibration preset persistence
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
