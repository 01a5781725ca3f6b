package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalContext exposes the day's unit constants to expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"hour": cty.NumberIntVal(60),
			"day":  cty.NumberIntVal(720),
		},
	}
}

// decodeInt evaluates expr and binds the result to a Go int. Strings holding
// numbers are converted; fractional and null values are rejected.
func decodeInt(expr hcl.Expression, evalCtx *hcl.EvalContext, name string) (int, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, fmt.Errorf("%s: %q must not be null", expr.Range(), name)
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%s: %q must be a number, got %s: %w", expr.Range(), name, val.Type().FriendlyName(), err)
	}

	var out int
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return 0, fmt.Errorf("%s: %q must be a whole number of minutes: %w", expr.Range(), name, err)
	}
	return out, nil
}
