package config

import (
	"errors"
	"fmt"

	"github.com/vk/daylayout/internal/model"
)

// ErrConflictingWidth is returned when two sources set different widths.
var ErrConflictingWidth = errors.New("conflicting layout width")

// Model is the unified, format-agnostic representation of one day's input.
type Model struct {
	// Width is the total layout width requested by the sources. Zero means
	// no source set it.
	Width int
	// Events in source order: file order, then declaration order.
	Events []model.Event
	// Files lists the source files that contributed to the model.
	Files []string
}

// Merge appends other's events and files to m and adopts its width if m has
// none. Two different non-zero widths are an error.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	if other.Width != 0 {
		if m.Width != 0 && m.Width != other.Width {
			return fmt.Errorf("%w: %d and %d", ErrConflictingWidth, m.Width, other.Width)
		}
		m.Width = other.Width
	}
	m.Events = append(m.Events, other.Events...)
	m.Files = append(m.Files, other.Files...)
	return nil
}
