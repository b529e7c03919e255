package models

// Subject is one of the graded school subjects.
type Subject string

const (
	English Subject = "english"
	Math    Subject = "math"
	Science Subject = "science"
	History Subject = "history"
	PE      Subject = "pe"
)

// Subjects lists every graded subject in report order.
var Subjects = []Subject{English, Math, Science, History, PE}

// IsValid reports whether s is one of the graded subjects.
func (s Subject) IsValid() bool {
	switch s {
	case English, Math, Science, History, PE:
		return true
	}
	return false
}

// Label returns the display name of the subject.
func (s Subject) Label() string {
	switch s {
	case English:
		return "English"
	case Math:
		return "Math"
	case Science:
		return "Science"
	case History:
		return "History"
	case PE:
		return "PE"
	}
	return string(s)
}

// Stats is a point-in-time summary of a player.
type Stats struct {
	Name           string          `yaml:"name"`
	GPA            float64         `yaml:"gpa"`
	Grades         map[Subject]int `yaml:"grades"`
	Popularity     int             `yaml:"popularity"`
	Energy         int             `yaml:"energy"`
	Stress         int             `yaml:"stress"`
	Achievements   []string        `yaml:"achievements"`
	InventoryItems int             `yaml:"inventory_items"`
	Minigames      int             `yaml:"minigames_completed"`
	ChoicesMade    int             `yaml:"choices_made"`
}

const (
	minStat = 0
	maxStat = 100
)

func clamp(v int) int {
	return max(minStat, min(maxStat, v))
}

// clampAdd adds d to a value already in range, saturating at the bounds
// without overflowing int.
func clampAdd(v, d int) int {
	v = clamp(v)
	switch {
	case d > maxStat-v:
		return maxStat
	case d < minStat-v:
		return minStat
	}
	return v + d
}
