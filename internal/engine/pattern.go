package engine

import (
	"sort"

	"github.com/dmarchetti/tempo/internal/domain"
)

const neutralScore = 0.5

// quartileSize is the number of hours in a peak/low-energy quartile (24/4).
const quartileSize = 6

// BuildPattern aggregates completed focus sessions into a productivity
// profile. Identical input always produces an identical pattern.
func BuildPattern(sessions []*domain.FocusSession) domain.ProductivityPattern {
	if len(sessions) == 0 {
		return DefaultPattern()
	}

	hourly := make(map[int][]*domain.FocusSession)
	for _, s := range sessions {
		hour := s.CompletedAt.Hour()
		hourly[hour] = append(hourly[hour], s)
	}

	p := domain.ProductivityPattern{
		Hourly: make(map[int]domain.HourStats, 24),
		Daily:  make(map[string]float64, 7),
	}

	for hour := 0; hour < 24; hour++ {
		group := hourly[hour]
		if len(group) == 0 {
			p.Hourly[hour] = domain.HourStats{
				AvgFocusScore:     neutralScore,
				AvgCompletionRate: neutralScore,
				InterruptionRate:  neutralScore,
			}
			continue
		}
		var focus, completion, interruptions float64
		for _, s := range group {
			focus += s.FocusScore
			if s.Interrupted {
				completion += 0.7
				interruptions++
			} else {
				completion += 1.0
			}
		}
		n := float64(len(group))
		p.Hourly[hour] = domain.HourStats{
			AvgFocusScore:     focus / n,
			AvgCompletionRate: completion / n,
			InterruptionRate:  interruptions / n,
			SampleCount:       len(group),
		}
	}

	p.PeakHours = topQuartileHours(p.Hourly)
	p.LowEnergyHours = bottomQuartileHours(p.Hourly)
	p.OptimalFocusWindows = focusWindows(p)
	p.Daily = dailyProductivity(sessions)
	p.ContextSwitchTolerance = switchTolerance(sessions)

	return p
}

// DefaultPattern is the fixed neutral profile used when no historical data
// exists or the historical store is unavailable.
func DefaultPattern() domain.ProductivityPattern {
	hourly := make(map[int]domain.HourStats, 24)
	for hour := 0; hour < 24; hour++ {
		hourly[hour] = domain.HourStats{
			AvgFocusScore:     neutralScore,
			AvgCompletionRate: neutralScore,
			InterruptionRate:  neutralScore,
		}
	}
	daily := make(map[string]float64, 7)
	for _, day := range weekdayNames {
		daily[day] = neutralScore
	}
	return domain.ProductivityPattern{
		Hourly: hourly,
		Daily:  daily,
		OptimalFocusWindows: []domain.FocusWindow{
			{StartHour: 9, EndHour: 11, ProductivityScore: 0.8, Quality: domain.FocusMedium},
		},
		PeakHours:              []int{9, 10, 14, 15},
		LowEnergyHours:         []int{12, 13, 16, 17},
		ContextSwitchTolerance: 0.6,
	}
}

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type hourScore struct {
	hour  int
	score float64
}

// topQuartileHours returns the top focus quartile, ties broken by ascending
// hour. Hours indistinguishable from the no-data default are never peaks.
func topQuartileHours(hourly map[int]domain.HourStats) []int {
	ranked := rankHours(hourly, func(a, b hourScore) bool {
		if a.score != b.score {
			return a.score > b.score
		}
		return a.hour < b.hour
	})

	var peaks []int
	for _, hs := range ranked {
		if len(peaks) >= quartileSize || hs.score <= neutralScore {
			break
		}
		peaks = append(peaks, hs.hour)
	}
	return peaks
}

// bottomQuartileHours mirrors topQuartileHours for the lowest-scoring hours.
func bottomQuartileHours(hourly map[int]domain.HourStats) []int {
	ranked := rankHours(hourly, func(a, b hourScore) bool {
		if a.score != b.score {
			return a.score < b.score
		}
		return a.hour < b.hour
	})

	var lows []int
	for _, hs := range ranked {
		if len(lows) >= quartileSize || hs.score >= neutralScore {
			break
		}
		lows = append(lows, hs.hour)
	}
	return lows
}

func rankHours(hourly map[int]domain.HourStats, less func(a, b hourScore) bool) []hourScore {
	ranked := make([]hourScore, 0, 24)
	for hour := 0; hour < 24; hour++ {
		ranked = append(ranked, hourScore{hour: hour, score: hourly[hour].AvgFocusScore})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	return ranked
}

// focusWindows slides a two-hour window over hours 0-21 and keeps windows
// whose average focus score exceeds 0.75.
func focusWindows(p domain.ProductivityPattern) []domain.FocusWindow {
	var windows []domain.FocusWindow
	for start := 0; start <= 21; start++ {
		avg := (p.HourScore(start) + p.HourScore(start+1)) / 2
		if avg <= 0.75 {
			continue
		}
		quality := domain.FocusMedium
		if avg > 0.85 {
			quality = domain.FocusHigh
		}
		windows = append(windows, domain.FocusWindow{
			StartHour:         start,
			EndHour:           start + 2,
			ProductivityScore: avg,
			Quality:           quality,
		})
	}
	return windows
}

func dailyProductivity(sessions []*domain.FocusSession) map[string]float64 {
	byDay := make(map[string][]float64)
	for _, s := range sessions {
		day := s.CompletedAt.Weekday().String()
		byDay[day] = append(byDay[day], s.FocusScore)
	}

	daily := make(map[string]float64, 7)
	for _, day := range weekdayNames {
		scores := byDay[day]
		if len(scores) == 0 {
			daily[day] = neutralScore
			continue
		}
		var sum float64
		for _, v := range scores {
			sum += v
		}
		daily[day] = sum / float64(len(scores))
	}
	return daily
}

func switchTolerance(sessions []*domain.FocusSession) float64 {
	if len(sessions) == 0 {
		return 0.6
	}
	var interrupted float64
	for _, s := range sessions {
		if s.Interrupted {
			interrupted++
		}
	}
	rate := interrupted / float64(len(sessions))
	if tolerance := 1 - rate; tolerance > 0.1 {
		return tolerance
	}
	return 0.1
}
