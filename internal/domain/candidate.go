package domain

import (
	"fmt"
	"time"
)

// Candidate is a proposed action produced by one generator. The Action tag
// drives executor dispatch; the remaining fields are common to all variants.
type Candidate struct {
	Action      ActionType
	Title       string
	Description string
	Confidence  float64 // 0..1, generator's self-reported certainty
	Impact      float64 // uncapped until ranking clamps the derived score
	Priority    Priority
	Source      Source
	Reasoning   string

	// Scheduling variants
	EventID       string
	OriginalTime  *time.Time
	SuggestedTime *time.Time
	DurationMin   int

	// Prediction variants
	DueDate *time.Time
}

// Validate checks the candidate invariants every generator must uphold.
func (c Candidate) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("candidate %s: empty title", c.Action)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("candidate %q: confidence %.3f outside [0,1]", c.Title, c.Confidence)
	}
	return nil
}

// ScoredCandidate is a candidate with its computed rank score and position.
type ScoredCandidate struct {
	Candidate
	ImportanceScore float64
	Rank            int
}
