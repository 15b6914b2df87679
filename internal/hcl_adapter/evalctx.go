package hcl_adapter

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the variables and functions available to
// expressions in configuration files.
func newEvalContext(environ []string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envValue(environ),
		},
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"title":     stdlib.TitleFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
			"strlen":    stdlib.StrlenFunc,
		},
	}
}

// envValue converts KEY=VALUE pairs into a cty map of strings. Later
// duplicates win, matching os.Getenv.
func envValue(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		k, v, ok := strings.Cut(e, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	// cty.MapVal panics on an empty map.
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}
