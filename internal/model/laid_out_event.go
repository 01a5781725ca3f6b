// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines LaidOutEvent, the output record handed to the renderer.
//
// Top duplicates Start on purpose: the renderer positions boxes by
// (Left, Top, Width, Height) and should not need to know which of those
// values are derived from the input interval.
package model

// LaidOutEvent is an Event annotated with its computed geometry.
type LaidOutEvent struct {
	Event

	// Column is the zero-based lane the event occupies within its cluster.
	Column int
	// Left is the horizontal offset, Column * Width.
	Left int
	// Top is the vertical offset, always equal to Start.
	Top int
	// Width is shared by every event of the same cluster.
	Width int
}

// Height returns the vertical extent of the event box.
func (e LaidOutEvent) Height() int {
	return e.End - e.Start
}
