// Package config defines the format-agnostic model of a day's input, along
// with the Loader interface that event sources implement.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete loaders, such as for HCL and YAML, are provided in separate
// packages and combined with Chain.
package config
