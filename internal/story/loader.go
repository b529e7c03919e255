package story

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content/school_day.yaml
var schoolDay []byte

// Document is the on-disk story format.
type Document struct {
	Title string `yaml:"title"`
	Start string `yaml:"start"`
	Nodes []Node `yaml:"nodes"`
}

// Load decodes a YAML story and builds its graph. Unknown fields are
// rejected. An empty start defaults to DefaultStart.
func Load(r io.Reader) (*Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("story: decode yaml: %w", err)
	}
	start := doc.Start
	if start == "" {
		start = DefaultStart
	}
	return NewGraph(start, doc.Nodes)
}

// LoadFile loads a story from a YAML file.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("story: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("story: %q: %w", path, err)
	}
	return g, nil
}

// SchoolDay builds the built-in school day story.
func SchoolDay() (*Graph, error) {
	return Load(bytes.NewReader(schoolDay))
}
