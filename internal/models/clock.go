package models

import (
	"fmt"
	"time"
)

// Period is one slot of the school schedule.
type Period struct {
	Number int
	Name   string
	Time   string
	// Duration is zero for the open-ended final period.
	Duration time.Duration
}

const (
	FirstPeriod = 1
	LunchPeriod = 5
	LastPeriod  = 9
)

var schedule = map[int]Period{
	1: {Number: 1, Name: "Homeroom", Time: "8:00 AM", Duration: 15 * time.Minute},
	2: {Number: 2, Name: "First Period", Time: "8:15 AM", Duration: 50 * time.Minute},
	3: {Number: 3, Name: "Second Period", Time: "9:05 AM", Duration: 50 * time.Minute},
	4: {Number: 4, Name: "Third Period", Time: "9:55 AM", Duration: 50 * time.Minute},
	5: {Number: 5, Name: "Lunch", Time: "10:45 AM", Duration: 30 * time.Minute},
	6: {Number: 6, Name: "Fourth Period", Time: "11:15 AM", Duration: 50 * time.Minute},
	7: {Number: 7, Name: "Fifth Period", Time: "12:05 PM", Duration: 50 * time.Minute},
	8: {Number: 8, Name: "Sixth Period", Time: "12:55 PM", Duration: 50 * time.Minute},
	9: {Number: 9, Name: "After School", Time: "1:45 PM"},
}

// Clock tracks the current period of the school day. The period only moves
// forward and never passes LastPeriod.
type Clock struct {
	currentPeriod  int
	minutesElapsed int
	late           bool
}

func NewClock() *Clock {
	return &Clock{currentPeriod: FirstPeriod}
}

func (c *Clock) CurrentPeriod() int { return c.currentPeriod }

// Period returns the schedule entry for the current period, falling back to
// homeroom if the counter is somehow outside the table.
func (c *Clock) Period() Period {
	if p, ok := schedule[c.currentPeriod]; ok {
		return p
	}
	return schedule[FirstPeriod]
}

func (c *Clock) CurrentPeriodName() string { return c.Period().Name }

func (c *Clock) CurrentTime() string { return c.Period().Time }

// AdvancePeriod moves to the next period and clears the late mark. It
// returns false once the day is already at the last period.
func (c *Clock) AdvancePeriod() bool {
	if c.currentPeriod >= LastPeriod {
		return false
	}
	c.currentPeriod++
	c.late = false
	return true
}

func (c *Clock) AddMinutes(minutes int) {
	c.minutesElapsed += minutes
}

func (c *Clock) MarkLate() { c.late = true }

func (c *Clock) IsLate() bool { return c.late }

func (c *Clock) IsLunchTime() bool { return c.currentPeriod == LunchPeriod }

func (c *Clock) IsAfterSchool() bool { return c.currentPeriod >= LastPeriod }

// MinutesUntilNextPeriod returns the minutes left in the current period.
func (c *Clock) MinutesUntilNextPeriod() int {
	if c.IsAfterSchool() {
		return 0
	}
	d := int(c.Period().Duration / time.Minute)
	return d - c.minutesElapsed%d
}

// Schedule returns the class periods in order, without the after-school slot.
func Schedule() []Period {
	out := make([]Period, 0, LastPeriod-1)
	for i := FirstPeriod; i < LastPeriod; i++ {
		out = append(out, schedule[i])
	}
	return out
}

func (c *Clock) String() string {
	return fmt.Sprintf("Clock(Period %d: %s)", c.currentPeriod, c.CurrentPeriodName())
}
