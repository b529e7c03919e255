package story

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/tatianab/school-days/internal/models"
)

// Slots is the complete set of live values node text may reference, e.g.
// {{.Name}} or {{.English}}. Templates naming anything else are rejected
// when the graph is built.
type Slots struct {
	Name               string
	Time               string
	Period             string
	GPA                string
	English            int
	Math               int
	Science            int
	History            int
	PE                 int
	Popularity         int
	Energy             int
	Stress             int
	Achievements       string
	AchievementCount   int
	MinigamesCompleted int
}

// NewSlots snapshots the player and clock.
func NewSlots(p *models.Player, c *models.Clock) Slots {
	achievements := "None"
	if a := p.Achievements(); len(a) > 0 {
		achievements = strings.Join(a, ", ")
	}
	return Slots{
		Name:               p.Name(),
		Time:               c.CurrentTime(),
		Period:             c.CurrentPeriodName(),
		GPA:                fmt.Sprintf("%.2f", p.GPA()),
		English:            p.Grade(models.English),
		Math:               p.Grade(models.Math),
		Science:            p.Grade(models.Science),
		History:            p.Grade(models.History),
		PE:                 p.Grade(models.PE),
		Popularity:         p.Popularity(),
		Energy:             p.Energy(),
		Stress:             p.Stress(),
		Achievements:       achievements,
		AchievementCount:   len(p.Achievements()),
		MinigamesCompleted: p.CompletedMinigames(),
	}
}

// compileText parses a node's text and checks it against Slots. Text may
// print slots and branch on them with if/else and the comparison and logic
// builtins; any other template feature or an unknown slot name is rejected,
// in every branch, before the graph is built.
func compileText(id, text string) (*template.Template, error) {
	tmpl, err := template.New(id).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, err
	}
	if len(tmpl.Templates()) > 1 {
		return nil, errors.New("nested template definitions are not supported")
	}
	if tmpl.Tree != nil {
		if err := checkNode(tmpl.Tree.Root); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, Slots{}); err != nil {
		return nil, err
	}
	return tmpl, nil
}

var slotNames = func() map[string]bool {
	t := reflect.TypeFor[Slots]()
	names := make(map[string]bool, t.NumField())
	for i := range t.NumField() {
		names[t.Field(i).Name] = true
	}
	return names
}()

var slotFuncs = map[string]bool{
	"eq": true, "ne": true, "lt": true, "le": true, "gt": true, "ge": true,
	"not": true, "and": true, "or": true,
}

func checkNode(node parse.Node) error {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return nil
		}
		for _, sub := range n.Nodes {
			if err := checkNode(sub); err != nil {
				return err
			}
		}
		return nil
	case *parse.TextNode, *parse.CommentNode:
		return nil
	case *parse.ActionNode:
		return checkPipe(n.Pipe)
	case *parse.IfNode:
		if err := checkPipe(n.Pipe); err != nil {
			return err
		}
		if err := checkNode(n.List); err != nil {
			return err
		}
		return checkNode(n.ElseList)
	}
	return fmt.Errorf("unsupported template action %s", node)
}

func checkPipe(p *parse.PipeNode) error {
	if p == nil {
		return nil
	}
	if len(p.Decl) > 0 {
		return fmt.Errorf("variables are not supported in %s", p)
	}
	if len(p.Cmds) != 1 {
		return fmt.Errorf("pipelines are not supported in %s", p)
	}
	args := p.Cmds[0].Args
	if fn, ok := args[0].(*parse.IdentifierNode); ok {
		if !slotFuncs[fn.Ident] {
			return fmt.Errorf("function %q is not supported", fn.Ident)
		}
		args = args[1:]
	} else if len(args) > 1 {
		return fmt.Errorf("slot %s takes no arguments", args[0])
	}
	for _, arg := range args {
		if err := checkArg(arg); err != nil {
			return err
		}
	}
	return nil
}

func checkArg(node parse.Node) error {
	switch n := node.(type) {
	case *parse.FieldNode:
		if len(n.Ident) != 1 || !slotNames[n.Ident[0]] {
			return fmt.Errorf("unknown slot %q", strings.TrimPrefix(n.String(), "."))
		}
		return nil
	case *parse.NumberNode, *parse.StringNode, *parse.BoolNode:
		return nil
	case *parse.PipeNode:
		return checkPipe(n)
	}
	return fmt.Errorf("unsupported template operand %s", node)
}

func render(tmpl *template.Template, slots Slots) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, slots); err != nil {
		return "", err
	}
	return buf.String(), nil
}
