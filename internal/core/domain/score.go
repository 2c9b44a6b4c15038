package domain

// Score is the agreement between an effective labeling and ground truth,
// computed over name multisets.
type Score struct {
	// Precision is TP/(TP+FP), or 0 when no positives were asserted.
	Precision float64

	// Recall is TP/(TP+FN), or 0 when the truth is empty.
	Recall float64

	// F1 is the harmonic mean of precision and recall, or 0 when both
	// are 0.
	F1 float64

	// TruePositives counts names matched between labeling and truth.
	TruePositives int

	// FalsePositives counts asserted names absent from truth.
	FalsePositives int

	// FalseNegatives counts truth names absent from the labeling.
	FalseNegatives int
}

// GroundTruthEntry is the reference labeling for one image.
type GroundTruthEntry struct {
	// ImagePath identifies the screenshot this labeling describes.
	ImagePath string

	// Items is the ordered list of item names present in the image.
	// Duplicates are meaningful: the labeling is a multiset.
	Items []string
}
