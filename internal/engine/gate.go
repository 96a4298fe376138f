package engine

import "github.com/dmarchetti/tempo/internal/domain"

// GatePolicy decides which ranked candidates are executed automatically.
type GatePolicy struct {
	MinConfidence float64
	MinImpact     float64 // applied only when UseImpactGate is set
	UseImpactGate bool
	MaxSelected   int
	// ScanLimit restricts selection to the first N ranked candidates when
	// positive. Task prediction only auto-creates from the top of the
	// ranking; schedule optimization scans the whole list.
	ScanLimit int
}

// OptimizationGate is the reference policy for schedule optimizations.
func OptimizationGate() GatePolicy {
	return GatePolicy{
		MinConfidence: 0.8,
		MinImpact:     0.6,
		UseImpactGate: true,
		MaxSelected:   5,
	}
}

// PredictionGate is the reference policy for auto-created tasks.
func PredictionGate() GatePolicy {
	return GatePolicy{
		MinConfidence: 0.85,
		MaxSelected:   3,
		ScanLimit:     3,
	}
}

// SelectForExecution partitions ranked candidates into the executable subset
// and the remainder left for review. Input order is preserved in both slices.
func SelectForExecution(ranked []domain.ScoredCandidate, policy GatePolicy) (selected, remainder []domain.ScoredCandidate) {
	for i, c := range ranked {
		inWindow := policy.ScanLimit <= 0 || i < policy.ScanLimit
		passes := inWindow &&
			len(selected) < policy.MaxSelected &&
			c.Confidence > policy.MinConfidence &&
			(!policy.UseImpactGate || c.Impact > policy.MinImpact)
		if passes {
			selected = append(selected, c)
		} else {
			remainder = append(remainder, c)
		}
	}
	return selected, remainder
}
