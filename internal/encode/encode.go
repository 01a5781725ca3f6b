// Package encode serialises a computed layout for the renderer.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vk/daylayout/internal/model"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name to a Format. "yml" is accepted as an
// alias of "yaml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q: must be 'json' or 'yaml'", s)
}

// Record is the wire shape of one laid-out event.
type Record struct {
	ID     string `json:"id" yaml:"id"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Column int    `json:"column" yaml:"column"`
	Left   int    `json:"left" yaml:"left"`
	Top    int    `json:"top" yaml:"top"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// Records converts laid-out events to their wire shape, keeping order.
func Records(events []model.LaidOutEvent) []Record {
	out := make([]Record, len(events))
	for i, e := range events {
		out[i] = Record{
			ID:     e.ID,
			Start:  e.Start,
			End:    e.End,
			Column: e.Column,
			Left:   e.Left,
			Top:    e.Top,
			Width:  e.Width,
			Height: e.Height(),
		}
	}
	return out
}

// Write encodes events to w in the given format.
func Write(w io.Writer, format Format, events []model.LaidOutEvent) error {
	records := Records(events)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", format)
}
