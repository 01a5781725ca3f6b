// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a single day's events and
// of the layout computed for them. It is the shared vocabulary of every other
// package: loaders produce Events, the cluster and column stages consume them,
// and encoders and publishers ship LaidOutEvents to the renderer.
//
// # Core Concepts
//
//   - Event: an interval of minutes within the day, identified by a unique id.
//     Valid events satisfy 0 <= Start < End <= DayMinutes.
//
//   - Cluster: a maximal group of events connected through a chain of
//     pairwise overlaps. Clusters are laid out independently of each other.
//
//   - LaidOutEvent: an Event annotated with its column, horizontal offset,
//     vertical offset and width.
//
// Why a separate model package?
//
// Keeping the types free of any parsing or layout logic lets the file loaders,
// the layout core and the output encoders evolve independently. Every value in
// this package is transient: it is created for one layout call and discarded
// afterwards.
package model
