// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the precondition checks applied before any layout work.
//
// Why validate at all?
//
// The layout stages assume well-formed intervals and unique ids. A zero-length
// event or a duplicated id would silently produce a layout that misattributes
// columns, so both are rejected up front and surfaced to the caller.
package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEvent is returned for events outside 0 <= start < end <= DayMinutes
	// or without an id.
	ErrMalformedEvent = errors.New("malformed event")

	// ErrDuplicateID is returned when two events share an id.
	ErrDuplicateID = errors.New("duplicate event id")
)

// Validate checks a single event against the day bounds.
func (e Event) Validate() error {
	switch {
	case e.ID == "":
		return fmt.Errorf("%w: missing id", ErrMalformedEvent)
	case e.Start < 0:
		return fmt.Errorf("%w: event %q starts before the day (start=%d)", ErrMalformedEvent, e.ID, e.Start)
	case e.End > DayMinutes:
		return fmt.Errorf("%w: event %q ends after the day (end=%d, limit=%d)", ErrMalformedEvent, e.ID, e.End, DayMinutes)
	case e.Start >= e.End:
		return fmt.Errorf("%w: event %q must start before it ends (start=%d, end=%d)", ErrMalformedEvent, e.ID, e.Start, e.End)
	}
	return nil
}

// Validate checks every event and fails fast on the first malformed event or
// duplicated id. An empty slice is valid.
func Validate(events []Event) error {
	seen := make(map[string]int, len(events))
	for i, e := range events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("event at position %d: %w", i, err)
		}
		if first, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, e.ID, first, i)
		}
		seen[e.ID] = i
	}
	return nil
}
