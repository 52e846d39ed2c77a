// Package eval runs file contents for the terminal's run command.
//
// Files are never executed as host code. They are parsed as HCL attributes
// (name = expression) and evaluated with a small set of pure functions and
// no access to the host, the network or the virtual filesystem.
package eval

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vvka-141/floppy/pkg/floppy"
)

// Evaluator turns file content into output lines.
type Evaluator interface {
	Run(name string, src string) ([]string, error)
}

// HCL evaluates attributes in source order. Each attribute may refer to the
// ones defined above it by name.
type HCL struct {
	functions map[string]function.Function
}

// NewHCL returns an evaluator with the default function whitelist.
func NewHCL() *HCL {
	return &HCL{functions: Functions()}
}

// Functions returns the functions callable from evaluated files.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":     stdlib.AbsoluteFunc,
		"concat":  stdlib.ConcatFunc,
		"format":  stdlib.FormatFunc,
		"join":    stdlib.JoinFunc,
		"length":  stdlib.LengthFunc,
		"lower":   stdlib.LowerFunc,
		"max":     stdlib.MaxFunc,
		"min":     stdlib.MinFunc,
		"reverse": stdlib.ReverseFunc,
		"strlen":  stdlib.StrlenFunc,
		"substr":  stdlib.SubstrFunc,
		"upper":   stdlib.UpperFunc,
	}
}

// Run evaluates src and returns one "name = value" line per attribute.
func (e *HCL) Run(name string, src string) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("%w: evaluation panicked: %v", floppy.ErrExecutionFault, r)
		}
	}()

	f, diags := hclsyntax.ParseConfig([]byte(src), name, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fault(diags)
	}
	attrs, diags := f.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fault(diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	vars := make(map[string]cty.Value, len(ordered))
	ctx := &hcl.EvalContext{
		Variables: vars,
		Functions: e.functions,
	}

	lines = make([]string, 0, len(ordered))
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, fault(diags)
		}
		rendered, err := render(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", floppy.ErrExecutionFault, attr.Name, err)
		}
		vars[attr.Name] = val
		lines = append(lines, fmt.Sprintf("%s = %s", attr.Name, rendered))
	}
	return lines, nil
}

func render(val cty.Value) (string, error) {
	if val.IsNull() {
		return "null", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}
	data, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fault(diags hcl.Diagnostics) error {
	return fmt.Errorf("%w: %s", floppy.ErrExecutionFault, diags.Error())
}

// Disabled refuses to run anything.
type Disabled struct{}

func (Disabled) Run(string, string) ([]string, error) {
	return nil, floppy.ErrRunDisabled
}
