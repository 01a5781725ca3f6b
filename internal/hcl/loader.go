package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/daylayout/internal/config"
	"github.com/vk/daylayout/internal/ctxlog"
	"github.com/vk/daylayout/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL event loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths. Events keep file order, then
// declaration order. At most one layout block may appear across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	m := &config.Model{}
	parser := hclparse.NewParser()
	evalCtx := evalContext()
	layoutFile := ""

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Layouts {
			if layoutFile != "" {
				return nil, fmt.Errorf("duplicate layout block in %s: already declared in %s", file, layoutFile)
			}
			width, err := translateLayout(b, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			m.Width = width
			layoutFile = file
		}

		for _, b := range root.Events {
			e, err := translateEvent(b, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			m.Events = append(m.Events, e)
		}

		m.Files = append(m.Files, file)
		logger.Debug("HCL file loaded.", "file", file, "events", len(root.Events))
	}

	logger.Debug("HCL loading complete.", "files", len(m.Files), "events", len(m.Events), "width", m.Width)
	return m, nil
}
