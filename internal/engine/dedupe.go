package engine

import (
	"strings"

	"github.com/dmarchetti/tempo/internal/domain"
)

// Dedupe drops candidates whose normalized title was already seen. Input
// must already be in declaration order (generator order, then within-
// generator order); the first occurrence wins.
func Dedupe(candidates []domain.Candidate) []domain.Candidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		key := strings.ToLower(strings.TrimSpace(c.Title))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
