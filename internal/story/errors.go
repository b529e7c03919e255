package story

import "errors"

var (
	// ErrNodeNotFound means a node id is absent from the graph.
	ErrNodeNotFound = errors.New("story: node not found")
	// ErrInvalidChoice means a choice index is missing or out of range.
	ErrInvalidChoice = errors.New("story: invalid choice")
	// ErrInvalidGraph wraps every content problem found while building a graph.
	ErrInvalidGraph = errors.New("story: invalid graph")
)

// ContentError describes one problem in the story content.
type ContentError struct {
	NodeID string
	Reason string
}

func (e *ContentError) Error() string {
	if e.NodeID == "" {
		return "story content: " + e.Reason
	}
	return "story content: node " + quote(e.NodeID) + ": " + e.Reason
}

func (e *ContentError) Unwrap() error { return ErrInvalidGraph }

func contentErr(nodeID, reason string) error {
	return &ContentError{NodeID: nodeID, Reason: reason}
}

func quote(s string) string { return `"` + s + `"` }
