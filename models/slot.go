package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AvailableSlot is an admin-defined bookable interval. StartTime and EndTime
// use the "15:04" 24h format.
type AvailableSlot struct {
	gorm.Model
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsBooked  bool      `json:"isBooked" gorm:"default:false"`
	Active    bool      `json:"active" gorm:"default:true"`
}

// RecurringPattern describes a bulk slot generation request: for every date in
// [From, To] whose weekday is in Days, the [StartTime, EndTime) window is cut
// into Duration-sized slots.
type RecurringPattern struct {
	Days      []time.Weekday `json:"days"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Duration  time.Duration  `json:"duration"`
	From      time.Time      `json:"from"`
	To        time.Time      `json:"to"`
}

const clockLayout = "15:04"

// Generate enumerates the slots the pattern describes. Only full-duration
// sub-intervals are produced; a window that does not divide evenly loses its
// tail. Existing rows are not consulted, so reapplying a pattern duplicates.
func (p RecurringPattern) Generate() ([]AvailableSlot, error) {
	if p.Duration <= 0 {
		return nil, fmt.Errorf("slot duration must be positive")
	}
	if len(p.Days) == 0 {
		return nil, fmt.Errorf("at least one weekday is required")
	}
	windowStart, err := time.Parse(clockLayout, p.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q", p.StartTime)
	}
	windowEnd, err := time.Parse(clockLayout, p.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q", p.EndTime)
	}
	if !windowEnd.After(windowStart) {
		return nil, fmt.Errorf("end time must be after start time")
	}

	wanted := make(map[time.Weekday]bool, len(p.Days))
	for _, d := range p.Days {
		wanted[d] = true
	}

	var slots []AvailableSlot
	for day := dateOnly(p.From); !day.After(dateOnly(p.To)); day = day.AddDate(0, 0, 1) {
		if !wanted[day.Weekday()] {
			continue
		}
		for start := windowStart; !start.Add(p.Duration).After(windowEnd); start = start.Add(p.Duration) {
			slots = append(slots, AvailableSlot{
				Date:      day,
				StartTime: start.Format(clockLayout),
				EndTime:   start.Add(p.Duration).Format(clockLayout),
				Active:    true,
			})
		}
	}
	return slots, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
