package app

import (
	"github.com/vk/daylayout/internal/config"
	"github.com/vk/daylayout/internal/hcl"
	"github.com/vk/daylayout/internal/yamlsrc"
)

// NewLoader returns the loader compiled into the daylayout binary: HCL
// sources first, then YAML and JSON sources.
func NewLoader() config.Loader {
	return config.Chain{
		hcl.NewLoader(),
		yamlsrc.NewLoader(),
	}
}
