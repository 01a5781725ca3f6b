package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of an events file. There is no
// remain body: unknown blocks and attributes are reported as errors.
type fileRoot struct {
	Layouts []*layoutBlock `hcl:"layout,block"`
	Events  []*eventBlock  `hcl:"event,block"`
}

// layoutBlock holds day-wide settings.
type layoutBlock struct {
	Width hcl.Expression `hcl:"width"`
}

// eventBlock is a single `event "<id>" { ... }` declaration. Start and end
// stay raw expressions until translation so they can reference variables.
type eventBlock struct {
	ID    string         `hcl:"id,label"`
	Start hcl.Expression `hcl:"start"`
	End   hcl.Expression `hcl:"end"`
}
