package engine

import (
	"math"

	"github.com/dmarchetti/tempo/internal/domain"
)

// Working hours considered for rescheduling, 9:00 through 17:00 starts.
const (
	workdayStart = 9
	workdayEnd   = 18 // exclusive
)

// OptimalTaskHour picks the best start hour for a task given its energy
// requirement. High-energy tasks go to the strongest peak hour. Low-energy
// tasks go to the lowest-scoring working hour; that reads inverted from the
// stated intent but matches the observed production behavior, so it is kept.
func OptimalTaskHour(energyRequirement float64, p domain.ProductivityPattern) int {
	if energyRequirement > 0.7 {
		best := -1
		bestScore := math.Inf(-1)
		for _, h := range p.PeakHours {
			if score := p.HourScore(h); score > bestScore {
				best, bestScore = h, score
			}
		}
		if best >= 0 {
			return best
		}
	}

	best := workdayStart
	bestScore := math.Inf(1)
	for h := workdayStart; h < workdayEnd; h++ {
		if score := p.HourScore(h); score < bestScore {
			best, bestScore = h, score
		}
	}
	return best
}

// MeetingAlternativeHour finds a non-peak working hour whose focus score is
// closest to 0.6, since moderate productivity suits collaboration. Returns
// the original hour when every working hour is a peak hour.
func MeetingAlternativeHour(originalHour int, p domain.ProductivityPattern) int {
	best := originalHour
	bestDist := math.Inf(1)
	for h := workdayStart; h < workdayEnd; h++ {
		if p.IsPeakHour(h) {
			continue
		}
		if dist := math.Abs(p.HourScore(h) - 0.6); dist < bestDist {
			best, bestDist = h, dist
		}
	}
	return best
}
