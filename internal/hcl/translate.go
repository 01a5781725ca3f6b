package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/daylayout/internal/model"
)

// translateEvent converts the HCL-specific event block into a model.Event.
// Range checks are left to model.Validate.
func translateEvent(b *eventBlock, evalCtx *hcl.EvalContext) (model.Event, error) {
	start, err := decodeInt(b.Start, evalCtx, "start")
	if err != nil {
		return model.Event{}, fmt.Errorf("event %q: %w", b.ID, err)
	}
	end, err := decodeInt(b.End, evalCtx, "end")
	if err != nil {
		return model.Event{}, fmt.Errorf("event %q: %w", b.ID, err)
	}
	return model.Event{ID: b.ID, Start: start, End: end}, nil
}

// translateLayout returns the width declared by a layout block.
func translateLayout(b *layoutBlock, evalCtx *hcl.EvalContext) (int, error) {
	width, err := decodeInt(b.Width, evalCtx, "width")
	if err != nil {
		return 0, fmt.Errorf("layout: %w", err)
	}
	if width <= 0 {
		return 0, fmt.Errorf("%s: layout width must be positive, got %d", b.Width.Range(), width)
	}
	return width, nil
}
