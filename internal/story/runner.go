package story

import (
	"context"
	"fmt"
	"log/slog"
)

// Display shows rendered node text.
type Display interface {
	Show(ctx context.Context, nodeID, text string) error
}

// ChoiceProvider asks the player to pick among labels. Choose returns a
// 1-based index and must only return in-range values; re-prompting on bad
// input is the provider's job. Continue is called before an automatic
// single-choice transition so the presentation can pace the story.
type ChoiceProvider interface {
	Choose(ctx context.Context, labels []string) (int, error)
	Continue(ctx context.Context, label string) error
}

// Runner walks a Graph, applying node effects to the player and clock.
type Runner struct {
	graph   *Graph
	env     Env
	display Display
	logger  *slog.Logger
}

// NewRunner checks that every mini-game the graph references is available
// in env, so missing content fails before play starts.
func NewRunner(g *Graph, env Env, display Display, logger *slog.Logger) (*Runner, error) {
	if env.Player == nil || env.Clock == nil {
		return nil, fmt.Errorf("story: runner needs a player and a clock")
	}
	for _, id := range g.Minigames() {
		if env.Minigames == nil || !env.Minigames.Has(id) {
			return nil, contentErr("", fmt.Sprintf("unknown minigame %q", id))
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{graph: g, env: env, display: display, logger: logger}, nil
}

// Resolve returns the node with the given id.
func (r *Runner) Resolve(id string) (Node, error) {
	return r.graph.Resolve(id)
}

// Enter visits a node: its text is rendered and shown, then its effect runs
// once.
func (r *Runner) Enter(ctx context.Context, id string) (Node, error) {
	n, err := r.graph.Resolve(id)
	if err != nil {
		return Node{}, err
	}
	r.logger.Debug("entering node", "node", id, "period", r.env.Clock.CurrentPeriod())

	if n.HasText() && r.display != nil {
		text, err := render(n.tmpl, NewSlots(r.env.Player, r.env.Clock))
		if err != nil {
			return Node{}, fmt.Errorf("story: render %q: %w", id, err)
		}
		if err := r.display.Show(ctx, id, text); err != nil {
			return Node{}, err
		}
	}

	if !n.Effect.IsZero() {
		r.logger.Debug("applying effect", "node", id, "kind", n.Effect.Kind)
		if err := n.Effect.Apply(ctx, r.env); err != nil {
			return Node{}, fmt.Errorf("story: node %q: %w", id, err)
		}
	}
	return n, nil
}

// Next resolves the transition out of an entered node. It returns "" when
// the node ends the story. A single choice is taken without looking at
// choice; otherwise choice must be a 1-based index into n.Choices. The
// chosen label is appended to the player's choice log.
func (r *Runner) Next(n Node, choice int) (string, error) {
	if n.Ends() {
		return "", nil
	}
	var c Choice
	switch {
	case len(n.Choices) == 1:
		c = n.Choices[0]
	case choice >= 1 && choice <= len(n.Choices):
		c = n.Choices[choice-1]
	default:
		return "", fmt.Errorf("%w: node %q has %d choices, got %d", ErrInvalidChoice, n.ID, len(n.Choices), choice)
	}
	r.env.Player.RecordChoice(c.Label)
	r.logger.Debug("choice made", "node", n.ID, "label", c.Label, "target", c.Target)
	return c.Target, nil
}

// Step enters id and follows choice out of it. A choice of 0 means none
// was given, which is only valid when the node has at most one choice.
func (r *Runner) Step(ctx context.Context, id string, choice int) (string, error) {
	n, err := r.Enter(ctx, id)
	if err != nil {
		return "", err
	}
	return r.Next(n, choice)
}

// Run walks from start until a node ends the story, asking choices for a
// selection only at nodes with more than one choice. Content and choice
// errors abort the run.
func (r *Runner) Run(ctx context.Context, start string, choices ChoiceProvider) error {
	id := start
	for id != "" {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Enter(ctx, id)
		if err != nil {
			return err
		}
		if n.Ends() {
			r.logger.Info("story finished", "node", id, "choices", len(r.env.Player.ChoicesMade()))
			return nil
		}

		choice := 0
		if len(n.Choices) == 1 {
			if err := choices.Continue(ctx, n.Choices[0].Label); err != nil {
				return err
			}
		} else {
			choice, err = choices.Choose(ctx, n.Labels())
			if err != nil {
				return err
			}
		}

		if id, err = r.Next(n, choice); err != nil {
			return err
		}
	}
	return nil
}
