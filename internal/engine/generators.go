package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmarchetti/tempo/internal/domain"
)

// Generator is one heuristic strategy. Implementations must be pure: they
// read only the shared RunContext snapshot and never touch another
// generator's output.
type Generator interface {
	Name() string
	Generate(rctx *domain.RunContext) ([]domain.Candidate, error)
}

// Generators returns the fixed, ordered strategy set for a feature. The
// declaration order is load-bearing: merged output and rank tie-breaking
// follow it regardless of which generator finishes first.
func Generators(feature domain.Feature) []Generator {
	switch feature {
	case domain.FeatureScheduleOptimization:
		return []Generator{
			rescheduleLowEnergyTasks{},
			moveMeetingsFromPeak{},
			blockFocusTime{},
			consolidateMeetings{},
		}
	case domain.FeatureTaskPrediction:
		return []Generator{
			patternTasks{},
			calendarTasks{},
			goalTasks{},
			deadlineTasks{},
		}
	}
	return nil
}

// atHour returns t with the hour replaced and minutes zeroed.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// rescheduleLowEnergyTasks moves high-energy tasks out of low-energy hours
// into the strongest peak hour.
type rescheduleLowEnergyTasks struct{}

func (rescheduleLowEnergyTasks) Name() string { return "reschedule_low_energy_tasks" }

func (rescheduleLowEnergyTasks) Generate(rctx *domain.RunContext) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, block := range rctx.Schedule {
		if block.Kind != domain.BlockTask || !block.Moveable || block.EnergyRequirement <= 0.7 {
			continue
		}
		hour := block.StartTime.Hour()
		if !rctx.Pattern.IsLowEnergyHour(hour) {
			continue
		}
		suggested := OptimalTaskHour(block.EnergyRequirement, rctx.Pattern)
		if suggested == hour {
			continue
		}
		start := block.StartTime
		moved := atHour(start, suggested)
		out = append(out, domain.Candidate{
			Action:        domain.ActionRescheduleLowEnergyTask,
			Title:         "Reschedule " + block.Title,
			Description:   "Move high-energy task from low-energy time to optimal slot",
			Confidence:    0.85,
			Impact:        0.7,
			Priority:      domain.PriorityMedium,
			Source:        domain.SourceSchedule,
			Reasoning:     fmt.Sprintf("Task requires high energy but is scheduled at %02d:00, a low-energy hour", hour),
			EventID:       block.ID,
			OriginalTime:  &start,
			SuggestedTime: &moved,
			DurationMin:   block.DurationMin(),
		})
	}
	return out, nil
}

// moveMeetingsFromPeak relocates non-essential meetings out of peak focus
// hours to a moderate-productivity slot.
type moveMeetingsFromPeak struct{}

func (moveMeetingsFromPeak) Name() string { return "move_meetings_from_peak" }

func (moveMeetingsFromPeak) Generate(rctx *domain.RunContext) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, block := range rctx.Schedule {
		if block.Kind != domain.BlockMeeting || !block.Moveable || block.Importance >= 0.9 {
			continue
		}
		hour := block.StartTime.Hour()
		if !rctx.Pattern.IsPeakHour(hour) {
			continue
		}
		alternative := MeetingAlternativeHour(hour, rctx.Pattern)
		if alternative == hour {
			continue
		}
		start := block.StartTime
		moved := atHour(start, alternative)
		out = append(out, domain.Candidate{
			Action:        domain.ActionMoveMeetingFromPeak,
			Title:         "Reschedule " + block.Title,
			Description:   "Move meeting out of peak productivity hours",
			Confidence:    0.8,
			Impact:        0.6,
			Priority:      domain.PriorityMedium,
			Source:        domain.SourceSchedule,
			Reasoning:     fmt.Sprintf("Meeting at %02d:00 conflicts with peak focus time", hour),
			EventID:       block.ID,
			OriginalTime:  &start,
			SuggestedTime: &moved,
			DurationMin:   block.DurationMin(),
		})
	}
	return out, nil
}

// blockFocusTime proposes dedicated focus blocks over the pattern's optimal
// windows when at most one low-importance moveable block conflicts.
type blockFocusTime struct{}

func (blockFocusTime) Name() string { return "block_focus_time" }

func (blockFocusTime) Generate(rctx *domain.RunContext) ([]domain.Candidate, error) {
	var out []domain.Candidate
	for _, window := range rctx.Pattern.OptimalFocusWindows {
		conflicts := 0
		for _, block := range rctx.Schedule {
			hour := block.StartTime.Hour()
			if hour >= window.StartHour && hour < window.EndHour &&
				block.Moveable && block.Importance < 0.7 {
				conflicts++
			}
		}
		if conflicts > 1 {
			continue
		}
		start := atHour(rctx.Now, window.StartHour)
		out = append(out, domain.Candidate{
			Action:        domain.ActionBlockFocusTime,
			Title:         fmt.Sprintf("Block focus time %d:00-%d:00", window.StartHour, window.EndHour),
			Description:   "Create dedicated focus block during high-productivity time",
			Confidence:    0.9,
			Impact:        0.8,
			Priority:      domain.PriorityHigh,
			Source:        domain.SourceSchedule,
			Reasoning:     fmt.Sprintf("High productivity period (%.2f score)", window.ProductivityScore),
			SuggestedTime: &start,
			DurationMin:   (window.EndHour - window.StartHour) * 60,
		})
	}
	return out, nil
}

// consolidateMeetings flags days whose moveable meetings are spread over
// more than four hours, fragmenting focus time.
type consolidateMeetings struct{}

func (consolidateMeetings) Name() string { return "consolidate_meetings" }

func (consolidateMeetings) Generate(rctx *domain.RunContext) ([]domain.Candidate, error) {
	byDay := make(map[string][]domain.CalendarEvent)
	var dayOrder []string
	for _, block := range rctx.Schedule {
		if block.Kind != domain.BlockMeeting || !block.Moveable {
			continue
		}
		day := block.StartTime.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		byDay[day] = append(byDay[day], block)
	}
	sort.Strings(dayOrder)

	var out []domain.Candidate
	for _, day := range dayOrder {
		meetings := byDay[day]
		if len(meetings) < 2 {
			continue
		}
		minHour, maxHour := 23, 0
		for _, m := range meetings {
			h := m.StartTime.Hour()
			if h < minHour {
				minHour = h
			}
			if h > maxHour {
				maxHour = h
			}
		}
		spread := maxHour - minHour
		if spread <= 4 {
			continue
		}
		out = append(out, domain.Candidate{
			Action:      domain.ActionConsolidateMeetings,
			Title:       "Consolidate meetings on " + meetings[0].StartTime.Weekday().String(),
			Description: "Group meetings together to create longer focus periods",
			Confidence:  0.7,
			Impact:      0.5,
			Priority:    domain.PriorityMedium,
			Source:      domain.SourceSchedule,
			Reasoning:   fmt.Sprintf("Meetings spread over %d hours, causing fragmentation", spread),
		})
	}
	return out, nil
}
