// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cluster

import (
	"sort"

	"github.com/vk/daylayout/internal/model"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Build groups events into clusters. Every input event appears in exactly
// one cluster. The input slice is not modified.
func Build(events []model.Event) []model.Cluster {
	if len(events) == 0 {
		return nil
	}

	g := overlapGraph(events)

	var (
		clusters []model.Cluster
		members  []int
	)
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) {
			members = append(members, int(n.ID()))
		},
	}

	for i := range events {
		seed := simple.Node(i)
		if bf.Visited(seed) {
			continue
		}
		members = members[:0]
		bf.Walk(g, seed, nil)
		clusters = append(clusters, collect(events, members))
	}
	return clusters
}

// overlapGraph builds the undirected overlap graph. Node ids are input
// positions, so duplicated event ids cannot collapse two nodes into one.
func overlapGraph(events []model.Event) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range events {
		g.AddNode(simple.Node(i))
	}
	for i := range events {
		for j := i + 1; j < len(events); j++ {
			if model.Overlaps(events[i], events[j]) {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}
	return g
}

// collect copies the component members out of events and sorts them by
// (start, duration). The walk visits neighbours in map order, so members are
// first put back into input order to keep ties deterministic.
func collect(events []model.Event, members []int) model.Cluster {
	positions := append([]int(nil), members...)
	sort.Ints(positions)

	c := make(model.Cluster, len(positions))
	for i, pos := range positions {
		c[i] = events[pos]
	}
	Sort(c)
	return c
}

// Sort orders a cluster by start time, then by duration. It is stable.
func Sort(c model.Cluster) {
	sort.SliceStable(c, func(i, j int) bool {
		if c[i].Start != c[j].Start {
			return c[i].Start < c[j].Start
		}
		return c[i].Duration() < c[j].Duration()
	})
}
