// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package cluster partitions a day's events into collision clusters: maximal
// groups of events connected through a chain of pairwise overlaps.
//
// # How It Works
//
// Events become the nodes of an undirected overlap graph, keyed by their
// position in the input. Every pair that satisfies model.Overlaps gets an
// edge. Clusters are the connected components of that graph, discovered by
// a breadth-first walk seeded with the first not-yet-visited event while
// scanning the input from left to right.
//
// # Ordering Guarantees
//
//   - Clusters appear in discovery order, which is a function of input order
//     and not of start time.
//   - Events inside a cluster are sorted by start time, then by duration.
//     Remaining ties keep input order, so the result is fully deterministic.
//
// The traversal state lives in a single Build call. Nothing is retained
// between calls.
package cluster
