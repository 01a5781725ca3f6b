// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Event, the input record of a layout call, and the overlap
// predicate that drives clustering.
//
// Why closed intervals?
//
// Two events overlap even when one ends exactly when the other starts. Such
// events end up in the same cluster and therefore share a width. The column
// stage uses a stricter reuse test (see package column), so touching events
// are still placed side by side.
package model

const (
	// DayMinutes is the length of the rendered day, in minutes.
	DayMinutes = 720

	// DefaultWidth is the horizontal space, in pixels, available to one day.
	DefaultWidth = 600
)

// Event is a single time interval within the day.
type Event struct {
	ID    string `json:"id" yaml:"id"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Duration returns the length of the event in minutes.
func (e Event) Duration() int {
	return e.End - e.Start
}

// Overlaps reports whether a and b share at least one minute, endpoints
// included.
func Overlaps(a, b Event) bool {
	return a.Start <= b.End && b.Start <= a.End
}

// Cluster is a maximal set of transitively overlapping events, ordered by
// start time and then by duration.
type Cluster []Event

// IDs returns the ids of the cluster's events in cluster order.
func (c Cluster) IDs() []string {
	ids := make([]string, len(c))
	for i, e := range c {
		ids[i] = e.ID
	}
	return ids
}
