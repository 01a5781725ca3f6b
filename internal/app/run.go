package app

import (
	"context"
	"fmt"

	"github.com/vk/daylayout/internal/ctxlog"
	"github.com/vk/daylayout/internal/encode"
	"github.com/vk/daylayout/internal/layout"
	"github.com/vk/daylayout/internal/model"
	"github.com/vk/daylayout/internal/publish"
)

// Run lays out the loaded events, writes the result and, when configured,
// publishes it to the renderer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	format, err := encode.ParseFormat(a.config.OutputFormat)
	if err != nil {
		return err
	}

	engine, err := layout.New(a.width())
	if err != nil {
		return err
	}

	if len(a.model.Events) == 0 {
		a.logger.Warn("No events found, writing an empty layout.", "path", a.config.EventsPath)
	}

	result, err := engine.LayOutDay(ctx, a.model.Events)
	if err != nil {
		return fmt.Errorf("failed to lay out day: %w", err)
	}
	a.logger.Info("Day laid out.", "events", len(result), "width", engine.Width())

	if err := encode.Write(a.outW, format, result); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}

	if a.config.PublishURL != "" {
		if err := a.publish(ctx, result); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// width resolves the layout width: explicit configuration first, then the
// event files, then the default.
func (a *App) width() int {
	switch {
	case a.config.Width > 0:
		return a.config.Width
	case a.model.Width > 0:
		return a.model.Width
	default:
		return model.DefaultWidth
	}
}

func (a *App) publish(ctx context.Context, result []model.LaidOutEvent) error {
	p, err := a.dial(ctx, publish.Options{
		URL:       a.config.PublishURL,
		Namespace: a.config.PublishNamespace,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to renderer: %w", err)
	}
	defer p.Close()

	if err := p.Publish(ctx, result); err != nil {
		return fmt.Errorf("failed to publish layout: %w", err)
	}
	a.logger.Info("Layout published.", "url", a.config.PublishURL)
	return nil
}
