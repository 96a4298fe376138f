package engine

import (
	"sort"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// Ranking weights for predicted tasks.
const (
	confidenceWeight = 0.4
	priorityWeight   = 0.3
	sourceWeight     = 0.2
)

// RankByImportance scores predicted-task candidates with the weighted
// confidence/priority/urgency/source formula and sorts descending. The sort
// is stable, so equal scores keep declaration order and a run stays
// deterministic.
func RankByImportance(candidates []domain.Candidate, now time.Time) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		score := c.Confidence*confidenceWeight +
			c.Priority.Weight()*priorityWeight +
			urgencyBonus(c.DueDate, now) +
			c.Source.Weight()*sourceWeight
		scored = append(scored, domain.ScoredCandidate{
			Candidate:       c,
			ImportanceScore: clamp01(score),
		})
	}
	sortAndRank(scored)
	return scored
}

// RankByImpact ranks schedule optimizations on impact alone; confidence is
// applied later as a selection gate, not a ranking input.
func RankByImpact(candidates []domain.Candidate) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, domain.ScoredCandidate{
			Candidate:       c,
			ImportanceScore: clamp01(c.Impact),
		})
	}
	sortAndRank(scored)
	return scored
}

func sortAndRank(scored []domain.ScoredCandidate) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].ImportanceScore > scored[j].ImportanceScore
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
}

// urgencyBonus rewards near due dates. Anything due within a day (including
// overdue) gets the full bonus.
func urgencyBonus(due *time.Time, now time.Time) float64 {
	if due == nil {
		return 0
	}
	days := daysUntil(*due, now)
	switch {
	case days <= 1:
		return 0.3
	case days <= 3:
		return 0.2
	case days <= 7:
		return 0.1
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
