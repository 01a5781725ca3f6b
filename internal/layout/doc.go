// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package layout is the entry point of the layout core. It validates a day's
// events, groups them into clusters and lays out every cluster in columns,
// returning one flat slice for the renderer.
//
// # Pipeline
//
//  1. model.Validate rejects malformed events and duplicated ids.
//  2. cluster.Build partitions the events into collision clusters.
//  3. column.Layout assigns columns and geometry inside each cluster.
//  4. Results are concatenated in cluster discovery order.
//
// The pipeline is synchronous and deterministic. An Engine holds only its
// configured width and can be shared between goroutines.
package layout
