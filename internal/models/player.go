package models

import (
	"fmt"
	"math"
	"slices"
)

// Starting values for a new player.
const (
	DefaultGrade        = 75
	DefaultPopularity   = 50
	DefaultEnergy       = 100
	DefaultStress       = 0
	DefaultRelationship = 50
)

// Player is the mutable record of a single player's progress through the day.
// Every bounded stat stays within [0, 100]; mutators clamp instead of failing.
type Player struct {
	name string

	grades        map[Subject]int
	popularity    int
	relationships map[string]int
	energy        int
	stress        int

	inventory          []string
	visitedLocations   map[string]struct{}
	completedMinigames map[string]struct{}
	achievements       []string
	storyFlags         map[string]any
	choicesMade        []string

	currentPeriod int
}

// NewPlayer creates a player with the default starting stats.
func NewPlayer(name string) *Player {
	p := &Player{
		name:               name,
		grades:             make(map[Subject]int, len(Subjects)),
		popularity:         DefaultPopularity,
		relationships:      make(map[string]int),
		energy:             DefaultEnergy,
		stress:             DefaultStress,
		visitedLocations:   make(map[string]struct{}),
		completedMinigames: make(map[string]struct{}),
		storyFlags:         make(map[string]any),
		currentPeriod:      1,
	}
	for _, s := range Subjects {
		p.grades[s] = DefaultGrade
	}
	return p
}

func (p *Player) Name() string { return p.name }

// Grade returns the current percentage for s, or 0 for an unknown subject.
func (p *Player) Grade(s Subject) int { return p.grades[s] }

// Grades returns a copy of all subject grades.
func (p *Player) Grades() map[Subject]int {
	out := make(map[Subject]int, len(p.grades))
	for k, v := range p.grades {
		out[k] = v
	}
	return out
}

// AddGradePoints adds points to a subject grade. Unknown subjects are ignored.
func (p *Player) AddGradePoints(s Subject, points int) {
	if _, ok := p.grades[s]; !ok {
		return
	}
	p.grades[s] = clampAdd(p.grades[s], points)
}

// SubtractGradePoints removes points from a subject grade.
func (p *Player) SubtractGradePoints(s Subject, points int) {
	if points == math.MinInt {
		p.AddGradePoints(s, math.MaxInt)
		return
	}
	p.AddGradePoints(s, -points)
}

// GPA is the mean grade scaled to 0-4.0, rounded to two decimals.
func (p *Player) GPA() float64 {
	if len(p.grades) == 0 {
		return 0
	}
	total := 0
	for _, g := range p.grades {
		total += g
	}
	mean := float64(total) / float64(len(p.grades))
	return math.Round(mean/100*4.0*100) / 100
}

func (p *Player) Popularity() int { return p.popularity }

func (p *Player) ChangePopularity(amount int) {
	p.popularity = clampAdd(p.popularity, amount)
}

func (p *Player) Energy() int { return p.energy }

func (p *Player) ChangeEnergy(amount int) {
	p.energy = clampAdd(p.energy, amount)
}

func (p *Player) Stress() int { return p.stress }

func (p *Player) ChangeStress(amount int) {
	p.stress = clampAdd(p.stress, amount)
}

// Relationship returns the level with npc; NPCs never met read as 50.
func (p *Player) Relationship(npc string) int {
	if v, ok := p.relationships[npc]; ok {
		return v
	}
	return DefaultRelationship
}

func (p *Player) SetRelationship(npc string, level int) {
	p.relationships[npc] = clamp(level)
}

func (p *Player) ChangeRelationship(npc string, amount int) {
	p.relationships[npc] = clampAdd(p.Relationship(npc), amount)
}

// AddItem appends item to the inventory. Duplicates are kept.
func (p *Player) AddItem(item string) {
	p.inventory = append(p.inventory, item)
}

// RemoveItem removes the first instance of item and reports whether one was found.
func (p *Player) RemoveItem(item string) bool {
	i := slices.Index(p.inventory, item)
	if i < 0 {
		return false
	}
	p.inventory = slices.Delete(p.inventory, i, i+1)
	return true
}

func (p *Player) HasItem(item string) bool {
	return slices.Contains(p.inventory, item)
}

// Inventory returns a copy of the inventory in insertion order.
func (p *Player) Inventory() []string {
	return slices.Clone(p.inventory)
}

func (p *Player) VisitLocation(location string) {
	p.visitedLocations[location] = struct{}{}
}

func (p *Player) HasVisited(location string) bool {
	_, ok := p.visitedLocations[location]
	return ok
}

func (p *Player) CompleteMinigame(id string) {
	p.completedMinigames[id] = struct{}{}
}

func (p *Player) HasCompletedMinigame(id string) bool {
	_, ok := p.completedMinigames[id]
	return ok
}

// CompletedMinigames returns how many distinct mini-games were completed.
func (p *Player) CompletedMinigames() int {
	return len(p.completedMinigames)
}

// AddAchievement records an achievement once; repeats are ignored.
func (p *Player) AddAchievement(name string) {
	if slices.Contains(p.achievements, name) {
		return
	}
	p.achievements = append(p.achievements, name)
}

func (p *Player) Achievements() []string {
	return slices.Clone(p.achievements)
}

// SetFlag stores a story flag. A nil value clears it.
func (p *Player) SetFlag(name string, value any) {
	if value == nil {
		delete(p.storyFlags, name)
		return
	}
	p.storyFlags[name] = value
}

// Flag returns the stored value of a flag and whether it is set.
func (p *Player) Flag(name string) (any, bool) {
	v, ok := p.storyFlags[name]
	return v, ok
}

// HasFlag reports whether a flag is set to a truthy value.
func (p *Player) HasFlag(name string) bool {
	v, ok := p.storyFlags[name]
	if !ok {
		return false
	}
	switch v := v.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	}
	return true
}

// RecordChoice appends a chosen option to the choice log.
func (p *Player) RecordChoice(label string) {
	p.choicesMade = append(p.choicesMade, label)
}

func (p *Player) ChoicesMade() []string {
	return slices.Clone(p.choicesMade)
}

func (p *Player) CurrentPeriod() int { return p.currentPeriod }

// AdvancePeriod moves the player's own period counter forward.
func (p *Player) AdvancePeriod() {
	p.currentPeriod++
}

// SyncPeriod aligns the player's period counter with the schedule clock.
func (p *Player) SyncPeriod(c *Clock) {
	p.currentPeriod = c.CurrentPeriod()
}

// Stats summarizes the player for end-of-day reporting.
func (p *Player) Stats() Stats {
	return Stats{
		Name:           p.name,
		GPA:            p.GPA(),
		Grades:         p.Grades(),
		Popularity:     p.popularity,
		Energy:         p.energy,
		Stress:         p.stress,
		Achievements:   p.Achievements(),
		InventoryItems: len(p.inventory),
		Minigames:      len(p.completedMinigames),
		ChoicesMade:    len(p.choicesMade),
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%s, GPA: %.2f, Popularity: %d)", p.name, p.GPA(), p.popularity)
}
