// Package yamlsrc provides the YAML implementation of the config.Loader
// interface. JSON files are read through the same decoder, since every JSON
// document is also valid YAML.
//
// A file is either a mapping with optional `width` and an `events` list, or a
// bare list of events:
//
//	width: 600
//	events:
//	  - {id: standup, start: 0, end: 15}
//	  - {id: 2, start: 60, end: 120}
//
// Numeric ids are read as strings.
package yamlsrc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/daylayout/internal/config"
	"github.com/vk/daylayout/internal/ctxlog"
	"github.com/vk/daylayout/internal/fsutil"
	"github.com/vk/daylayout/internal/model"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions the loader reads.
var Extensions = []string{".yaml", ".yml", ".json"}

type document struct {
	Width  wholeNumber   `yaml:"width"`
	Events []eventRecord `yaml:"events"`
}

// eventRecord uses pointers so a missing start or end is distinguishable
// from zero.
type eventRecord struct {
	ID    string       `yaml:"id"`
	Start *wholeNumber `yaml:"start"`
	End   *wholeNumber `yaml:"end"`
}

// wholeNumber only accepts integer scalars. A plain int field would let
// yaml.v3 truncate 10.9 to 10.
type wholeNumber int

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *wholeNumber) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("line %d: %q is not a whole number", node.Line, node.Value)
	}
	var v int
	if err := node.Decode(&v); err != nil {
		return err
	}
	*n = wholeNumber(v)
	return nil
}

// Loader reads events from YAML and JSON files.
type Loader struct{}

// NewLoader creates a new YAML event loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	m := &config.Model{}
	for _, file := range files {
		doc, err := readFile(file)
		if err != nil {
			return nil, err
		}
		if err := m.Merge(doc); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		logger.Debug("YAML file loaded.", "file", file, "events", len(doc.Events))
	}
	return m, nil
}

func readFile(file string) (*config.Model, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file, err)
	}
	m.Files = []string{file}
	return m, nil
}

// Parse decodes a single YAML or JSON document. Unknown fields are rejected.
func Parse(data []byte) (*config.Model, error) {
	var probe yaml.Node
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if len(probe.Content) == 0 {
		return &config.Model{}, nil
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var err error
	if probe.Content[0].Kind == yaml.SequenceNode {
		err = dec.Decode(&doc.Events)
	} else {
		err = dec.Decode(&doc)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if doc.Width < 0 {
		return nil, fmt.Errorf("width must be positive, got %d", doc.Width)
	}

	m := &config.Model{Width: int(doc.Width), Events: make([]model.Event, 0, len(doc.Events))}
	for i, r := range doc.Events {
		if r.Start == nil || r.End == nil {
			return nil, fmt.Errorf("event %d (%q): start and end are required", i, r.ID)
		}
		m.Events = append(m.Events, model.Event{ID: r.ID, Start: int(*r.Start), End: int(*r.End)})
	}
	return m, nil
}
