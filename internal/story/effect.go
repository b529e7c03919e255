package story

import (
	"context"
	"errors"
	"fmt"

	"github.com/tatianab/school-days/internal/models"
)

// EffectKind discriminates the Effect variants.
type EffectKind string

const (
	EffectNone          EffectKind = "none"
	EffectStat          EffectKind = "stat"
	EffectMinigame      EffectKind = "minigame"
	EffectAdvancePeriod EffectKind = "advance_period"
	EffectComposite     EffectKind = "composite"
	EffectAchievement   EffectKind = "achievement"
	EffectAddItem       EffectKind = "add_item"
	EffectVisit         EffectKind = "visit"
	EffectSetFlag       EffectKind = "set_flag"
)

// Stat names a bounded player stat changed by an EffectStat.
type Stat string

const (
	StatPopularity      Stat = "popularity"
	StatEnergy          Stat = "energy"
	StatStress          Stat = "stress"
	StatGrade           Stat = "grade"
	StatRelationship    Stat = "relationship"
	StatRelationshipSet Stat = "relationship_set"
)

// Effect is the declarative action attached to a node. Only the fields that
// belong to Kind are read.
type Effect struct {
	Kind EffectKind `yaml:"kind"`

	// stat
	Stat    Stat           `yaml:"stat,omitempty"`
	Amount  int            `yaml:"amount,omitempty"`
	Subject models.Subject `yaml:"subject,omitempty"`
	NPC     string         `yaml:"npc,omitempty"`

	// minigame
	Minigame string `yaml:"minigame,omitempty"`

	// achievement, add_item, visit, set_flag
	Name  string `yaml:"name,omitempty"`
	Value *bool  `yaml:"value,omitempty"`

	// composite
	Effects []Effect `yaml:"effects,omitempty"`
}

// NoEffect is the zero action.
var NoEffect = Effect{Kind: EffectNone}

func StatDelta(stat Stat, amount int) Effect {
	return Effect{Kind: EffectStat, Stat: stat, Amount: amount}
}

func GradeDelta(subject models.Subject, amount int) Effect {
	return Effect{Kind: EffectStat, Stat: StatGrade, Subject: subject, Amount: amount}
}

func RelationshipDelta(npc string, amount int) Effect {
	return Effect{Kind: EffectStat, Stat: StatRelationship, NPC: npc, Amount: amount}
}

func SetRelationship(npc string, level int) Effect {
	return Effect{Kind: EffectStat, Stat: StatRelationshipSet, NPC: npc, Amount: level}
}

func InvokeMinigame(id string) Effect {
	return Effect{Kind: EffectMinigame, Minigame: id}
}

func AdvancePeriod() Effect {
	return Effect{Kind: EffectAdvancePeriod}
}

func Composite(effects ...Effect) Effect {
	return Effect{Kind: EffectComposite, Effects: effects}
}

func Achievement(name string) Effect {
	return Effect{Kind: EffectAchievement, Name: name}
}

func AddItem(item string) Effect {
	return Effect{Kind: EffectAddItem, Name: item}
}

func Visit(location string) Effect {
	return Effect{Kind: EffectVisit, Name: location}
}

func SetFlag(flag string, value bool) Effect {
	return Effect{Kind: EffectSetFlag, Name: flag, Value: &value}
}

// IsZero reports whether the effect does nothing.
func (e Effect) IsZero() bool {
	return e.Kind == "" || e.Kind == EffectNone
}

// Validate checks the effect and any nested effects for missing or
// unknown fields.
func (e Effect) Validate() error {
	switch e.Kind {
	case "", EffectNone, EffectAdvancePeriod:
		return nil
	case EffectStat:
		switch e.Stat {
		case StatPopularity, StatEnergy, StatStress:
			return nil
		case StatGrade:
			if !e.Subject.IsValid() {
				return fmt.Errorf("grade effect has unknown subject %q", e.Subject)
			}
			return nil
		case StatRelationship, StatRelationshipSet:
			if e.NPC == "" {
				return fmt.Errorf("%s effect needs an npc", e.Stat)
			}
			return nil
		}
		return fmt.Errorf("unknown stat %q", e.Stat)
	case EffectMinigame:
		if e.Minigame == "" {
			return errors.New("minigame effect needs a minigame id")
		}
		return nil
	case EffectComposite:
		for i, sub := range e.Effects {
			if err := sub.Validate(); err != nil {
				return fmt.Errorf("effects[%d]: %w", i, err)
			}
		}
		return nil
	case EffectAchievement, EffectAddItem, EffectVisit, EffectSetFlag:
		if e.Name == "" {
			return fmt.Errorf("%s effect needs a name", e.Kind)
		}
		return nil
	}
	return fmt.Errorf("unknown effect kind %q", e.Kind)
}

// Minigames returns every mini-game id the effect can invoke.
func (e Effect) Minigames() []string {
	switch e.Kind {
	case EffectMinigame:
		return []string{e.Minigame}
	case EffectComposite:
		var ids []string
		for _, sub := range e.Effects {
			ids = append(ids, sub.Minigames()...)
		}
		return ids
	}
	return nil
}

// Minigames plays a mini-game by id against the player.
type Minigames interface {
	Play(ctx context.Context, id string, p *models.Player) error
	Has(id string) bool
}

// Env is what an effect may read and mutate.
type Env struct {
	Player    *models.Player
	Clock     *models.Clock
	Minigames Minigames
}

// Apply runs the effect against env. Composite effects apply in order and
// stop at the first error.
func (e Effect) Apply(ctx context.Context, env Env) error {
	p := env.Player
	switch e.Kind {
	case "", EffectNone:
	case EffectStat:
		switch e.Stat {
		case StatPopularity:
			p.ChangePopularity(e.Amount)
		case StatEnergy:
			p.ChangeEnergy(e.Amount)
		case StatStress:
			p.ChangeStress(e.Amount)
		case StatGrade:
			p.AddGradePoints(e.Subject, e.Amount)
		case StatRelationship:
			p.ChangeRelationship(e.NPC, e.Amount)
		case StatRelationshipSet:
			p.SetRelationship(e.NPC, e.Amount)
		default:
			return fmt.Errorf("apply: unknown stat %q", e.Stat)
		}
	case EffectMinigame:
		if env.Minigames == nil {
			return fmt.Errorf("apply: no minigames to play %q", e.Minigame)
		}
		if err := env.Minigames.Play(ctx, e.Minigame, p); err != nil {
			return fmt.Errorf("minigame %s: %w", e.Minigame, err)
		}
	case EffectAdvancePeriod:
		env.Clock.AdvancePeriod()
		p.SyncPeriod(env.Clock)
	case EffectComposite:
		for _, sub := range e.Effects {
			if err := sub.Apply(ctx, env); err != nil {
				return err
			}
		}
	case EffectAchievement:
		p.AddAchievement(e.Name)
	case EffectAddItem:
		p.AddItem(e.Name)
	case EffectVisit:
		p.VisitLocation(e.Name)
	case EffectSetFlag:
		v := true
		if e.Value != nil {
			v = *e.Value
		}
		p.SetFlag(e.Name, v)
	default:
		return fmt.Errorf("apply: unknown effect kind %q", e.Kind)
	}
	return nil
}
