// Package story is the branching narrative engine: an immutable graph of
// nodes, the effects they apply, and the runner that walks it.
package story

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"
)

// DefaultStart is the conventional id of the first node.
const DefaultStart = "start"

// Choice is a labelled edge to another node.
type Choice struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// Node is one unit of story content.
type Node struct {
	ID       string   `yaml:"id"`
	Text     string   `yaml:"text,omitempty"`
	Choices  []Choice `yaml:"choices,omitempty"`
	Effect   Effect   `yaml:"effect,omitempty"`
	Terminal bool     `yaml:"terminal,omitempty"`

	tmpl *template.Template
}

// HasText reports whether the node has anything to display.
func (n Node) HasText() bool {
	return strings.TrimSpace(n.Text) != ""
}

// Ends reports whether traversal stops after this node.
func (n Node) Ends() bool {
	return n.Terminal || len(n.Choices) == 0
}

// Labels returns the choice labels in order.
func (n Node) Labels() []string {
	labels := make([]string, len(n.Choices))
	for i, c := range n.Choices {
		labels[i] = c.Label
	}
	return labels
}

// Graph is an immutable set of nodes with a designated start node.
type Graph struct {
	start string
	nodes map[string]*Node
	order []string
}

// NewGraph validates nodes and builds a graph. Every problem found is
// reported, joined, and each one matches ErrInvalidGraph.
func NewGraph(start string, nodes []Node) (*Graph, error) {
	g := &Graph{
		start: start,
		nodes: make(map[string]*Node, len(nodes)),
	}
	var errs []error

	for i := range nodes {
		n := nodes[i]
		if n.ID == "" {
			errs = append(errs, contentErr("", fmt.Sprintf("nodes[%d] has no id", i)))
			continue
		}
		if _, dup := g.nodes[n.ID]; dup {
			errs = append(errs, contentErr(n.ID, "duplicate id"))
			continue
		}
		tmpl, err := compileText(n.ID, n.Text)
		if err != nil {
			errs = append(errs, contentErr(n.ID, "text: "+err.Error()))
		}
		if err := n.Effect.Validate(); err != nil {
			errs = append(errs, contentErr(n.ID, "effect: "+err.Error()))
		}
		n.tmpl = tmpl
		n.Choices = slices.Clone(n.Choices)
		n.Effect = cloneEffect(n.Effect)
		g.nodes[n.ID] = &n
		g.order = append(g.order, n.ID)
	}

	if _, ok := g.nodes[start]; !ok {
		errs = append(errs, contentErr(start, "start node does not exist"))
	}
	for _, id := range g.order {
		for i, c := range g.nodes[id].Choices {
			if c.Label == "" {
				errs = append(errs, contentErr(id, fmt.Sprintf("choice %d has no label", i+1)))
			}
			if _, ok := g.nodes[c.Target]; !ok {
				errs = append(errs, contentErr(id, fmt.Sprintf("choice %d targets missing node %q", i+1, c.Target)))
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

// Start returns the start node id.
func (g *Graph) Start() string { return g.start }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// IDs returns node ids in declaration order.
func (g *Graph) IDs() []string { return slices.Clone(g.order) }

// Resolve returns a copy of the node with the given id.
func (g *Graph) Resolve(id string) (Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := *n
	out.Choices = slices.Clone(n.Choices)
	out.Effect = cloneEffect(n.Effect)
	return out, nil
}

// Minigames returns every mini-game id referenced by node effects.
func (g *Graph) Minigames() []string {
	var ids []string
	for _, id := range g.order {
		for _, m := range g.nodes[id].Effect.Minigames() {
			if !slices.Contains(ids, m) {
				ids = append(ids, m)
			}
		}
	}
	return ids
}

// Unreachable returns ids that no path from the start node reaches.
func (g *Graph) Unreachable() []string {
	seen := map[string]bool{g.start: true}
	queue := []string{g.start}
	for len(queue) > 0 {
		n := g.nodes[queue[0]]
		queue = queue[1:]
		if n == nil || n.Terminal {
			continue
		}
		for _, c := range n.Choices {
			if !seen[c.Target] {
				seen[c.Target] = true
				queue = append(queue, c.Target)
			}
		}
	}
	var out []string
	for _, id := range g.order {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}

func cloneEffect(e Effect) Effect {
	if len(e.Effects) == 0 {
		return e
	}
	subs := make([]Effect, len(e.Effects))
	for i, sub := range e.Effects {
		subs[i] = cloneEffect(sub)
	}
	e.Effects = subs
	return e
}
