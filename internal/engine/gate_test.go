package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/tempo/internal/domain"
)

func scoredCandidate(title string, confidence, impact float64) domain.ScoredCandidate {
	return domain.ScoredCandidate{
		Candidate: domain.Candidate{Title: title, Confidence: confidence, Impact: impact},
	}
}

func TestSelectForExecution_ImpactGateBlocksConfidentCandidate(t *testing.T) {
	ranked := []domain.ScoredCandidate{
		scoredCandidate("confident but weak", 0.9, 0.5),
	}

	selected, remainder := SelectForExecution(ranked, OptimizationGate())

	assert.Empty(t, selected)
	require.Len(t, remainder, 1)
	assert.Equal(t, "confident but weak", remainder[0].Title)
}

func TestSelectForExecution_BothGatesMustPass(t *testing.T) {
	ranked := []domain.ScoredCandidate{
		scoredCandidate("passes", 0.85, 0.7),
		scoredCandidate("low confidence", 0.7, 0.9),
		scoredCandidate("at threshold", 0.8, 0.6), // thresholds are strict
	}

	selected, remainder := SelectForExecution(ranked, OptimizationGate())

	require.Len(t, selected, 1)
	assert.Equal(t, "passes", selected[0].Title)
	assert.Len(t, remainder, 2)
}

func TestSelectForExecution_MaxSelectedBound(t *testing.T) {
	var ranked []domain.ScoredCandidate
	for i := 0; i < 8; i++ {
		ranked = append(ranked, scoredCandidate(fmt.Sprintf("opt-%d", i), 0.9, 0.8))
	}

	selected, remainder := SelectForExecution(ranked, OptimizationGate())

	assert.Len(t, selected, 5)
	assert.Len(t, remainder, 3)
	// Order preserved in both partitions.
	assert.Equal(t, "opt-0", selected[0].Title)
	assert.Equal(t, "opt-5", remainder[0].Title)
}

func TestSelectForExecution_PredictionScanWindow(t *testing.T) {
	ranked := []domain.ScoredCandidate{
		scoredCandidate("top confident", 0.95, 0),
		scoredCandidate("top hesitant", 0.6, 0),
		scoredCandidate("third confident", 0.9, 0),
		scoredCandidate("confident but unranked", 0.99, 0),
	}

	selected, remainder := SelectForExecution(ranked, PredictionGate())

	// Only the top three ranks are ever auto-created, regardless of how
	// confident a later candidate is.
	require.Len(t, selected, 2)
	assert.Equal(t, "top confident", selected[0].Title)
	assert.Equal(t, "third confident", selected[1].Title)
	require.Len(t, remainder, 2)
	assert.Equal(t, "top hesitant", remainder[0].Title)
	assert.Equal(t, "confident but unranked", remainder[1].Title)
}

func TestSelectForExecution_EmptyInput(t *testing.T) {
	selected, remainder := SelectForExecution(nil, OptimizationGate())
	assert.Empty(t, selected)
	assert.Empty(t, remainder)
}
