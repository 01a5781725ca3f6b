// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package column assigns events of one sorted cluster to side-by-side columns
// and derives their geometry.
//
// Column reuse is strict: an event may only take over a column whose last
// event ended before the new one starts. Events that merely touch are
// clustered together (see package cluster) but never share a column.
package column

import "github.com/vk/daylayout/internal/model"

// Assign runs the greedy column scan over a cluster already sorted by
// (start, duration). It returns the column index of every event, in cluster
// order, and the number of columns used.
func Assign(sorted model.Cluster) ([]int, int) {
	columns := make([]int, len(sorted))
	var ends []int // end time of the latest event in each column

	for i, e := range sorted {
		col := -1
		for c, end := range ends {
			if end < e.Start {
				col = c
				break
			}
		}
		if col < 0 {
			ends = append(ends, e.End)
			col = len(ends) - 1
		} else {
			ends[col] = e.End
		}
		columns[i] = col
	}
	return columns, len(ends)
}

// Layout assigns columns and computes the geometry of every event. All events
// of the cluster share the width totalWidth / numColumns, rounded down; the
// leftover is not redistributed.
func Layout(sorted model.Cluster, totalWidth int) []model.LaidOutEvent {
	if len(sorted) == 0 {
		return nil
	}

	columns, numColumns := Assign(sorted)
	width := totalWidth / numColumns

	out := make([]model.LaidOutEvent, len(sorted))
	for i, e := range sorted {
		out[i] = model.LaidOutEvent{
			Event:  e,
			Column: columns[i],
			Left:   columns[i] * width,
			Top:    e.Start,
			Width:  width,
		}
	}
	return out
}
