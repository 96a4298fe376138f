package domain

// HourStats summarizes historical focus sessions completing in one hour of day.
type HourStats struct {
	AvgFocusScore     float64
	AvgCompletionRate float64
	InterruptionRate  float64
	SampleCount       int
}

// FocusWindow is a contiguous two-hour window with consistently high focus.
type FocusWindow struct {
	StartHour         int
	EndHour           int
	ProductivityScore float64
	Quality           FocusQuality
}

// ProductivityPattern is the statistical productivity profile built from one
// lookback window of historical sessions. It is constructed once per run and
// never mutated afterwards.
type ProductivityPattern struct {
	Hourly                 map[int]HourStats
	Daily                  map[string]float64 // weekday name -> mean focus score
	OptimalFocusWindows    []FocusWindow
	PeakHours              []int
	LowEnergyHours         []int
	ContextSwitchTolerance float64
}

// HourScore returns the average focus score for an hour, defaulting to the
// neutral 0.5 when the hour has no data.
func (p ProductivityPattern) HourScore(hour int) float64 {
	if s, ok := p.Hourly[hour]; ok {
		return s.AvgFocusScore
	}
	return 0.5
}

// IsPeakHour reports whether the hour is in the top focus quartile.
func (p ProductivityPattern) IsPeakHour(hour int) bool {
	for _, h := range p.PeakHours {
		if h == hour {
			return true
		}
	}
	return false
}

// IsLowEnergyHour reports whether the hour is in the bottom focus quartile.
func (p ProductivityPattern) IsLowEnergyHour(hour int) bool {
	for _, h := range p.LowEnergyHours {
		if h == hour {
			return true
		}
	}
	return false
}
