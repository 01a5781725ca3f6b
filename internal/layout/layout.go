// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/daylayout/internal/cluster"
	"github.com/vk/daylayout/internal/column"
	"github.com/vk/daylayout/internal/ctxlog"
	"github.com/vk/daylayout/internal/model"
)

// ErrInvalidWidth is returned by New for a non-positive width.
var ErrInvalidWidth = errors.New("layout width must be positive")

// Engine lays out the events of one day within a fixed horizontal space.
type Engine struct {
	width int
}

// New creates an Engine for the given total width in pixels.
func New(width int) (*Engine, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	return &Engine{width: width}, nil
}

// Width returns the total width the engine distributes between columns.
func (e *Engine) Width() int {
	return e.width
}

// LayOutDay computes the layout of events. The result holds every input
// event exactly once, grouped cluster by cluster. Empty input yields an empty
// result. The events slice is not modified.
func (e *Engine) LayOutDay(ctx context.Context, events []model.Event) ([]model.LaidOutEvent, error) {
	ctx, logger := ctxlog.With(ctx, "width", e.width)
	logger.Debug("Layout started.", "event_count", len(events))

	clusters, err := Clusters(ctx, events)
	if err != nil {
		return nil, err
	}

	out := make([]model.LaidOutEvent, 0, len(events))
	for i, c := range clusters {
		laid := column.Layout(c, e.width)
		logger.Debug("Cluster laid out.", "cluster", i, "size", len(c), "column_width", laid[0].Width)
		out = append(out, laid...)
	}

	logger.Debug("Layout finished.", "cluster_count", len(clusters))
	return out, nil
}

// Clusters validates events and returns their collision clusters.
func Clusters(ctx context.Context, events []model.Event) ([]model.Cluster, error) {
	if err := model.Validate(events); err != nil {
		return nil, fmt.Errorf("invalid events: %w", err)
	}
	clusters := cluster.Build(events)
	ctxlog.FromContext(ctx).Debug("Clusters built.", "cluster_count", len(clusters))
	return clusters, nil
}

// LayOutDay lays out events across model.DefaultWidth.
func LayOutDay(events []model.Event) ([]model.LaidOutEvent, error) {
	e := &Engine{width: model.DefaultWidth}
	return e.LayOutDay(context.Background(), events)
}
