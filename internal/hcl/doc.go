// Package hcl provides the HCL implementation of the config.Loader interface.
// It is responsible for discovering .hcl files, parsing `layout` and `event`
// blocks, evaluating their expressions and binding the results to Go values
// through go-cty.
//
// A minimal file:
//
//	layout {
//	  width = 600
//	}
//
//	event "standup" {
//	  start = 0
//	  end   = 15
//	}
//
//	event "lunch" {
//	  start = 3 * hour
//	  end   = 4 * hour
//	}
//
// Expressions may reference the variables `hour` (60) and `day` (720).
package hcl
