// Package alarmfile reads declarative alarm sets written in HCL:
//
//	variable "instance" {
//	  default = "i-0123456789abcdef0"
//	}
//
//	alarm "web-cpu-high" {
//	  instance_id = var.instance
//	  threshold   = 80
//	}
//
// Variables may be overridden with name=value pairs at load time.
package alarmfile

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/olusolaa/ec2ctl/internal/core/domain"
	"github.com/olusolaa/ec2ctl/internal/core/ports"
	"github.com/olusolaa/ec2ctl/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "variable", LabelNames: []string{"name"}},
		{Type: "alarm", LabelNames: []string{"name"}},
	},
}

var variableSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "default"},
	},
}

type Loader struct {
	logger ports.Logger
}

func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadFile reads path and returns its alarms in declaration order.
func (l *Loader) LoadFile(ctx context.Context, path string, overrides map[string]string) ([]domain.AlarmSpec, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeAlarmFileError,
			fmt.Sprintf("Could not read alarm file %s", path), "Check the path passed with --file.")
	}
	return l.Parse(ctx, src, path, overrides)
}

func (l *Loader) Parse(ctx context.Context, src []byte, filename string, overrides map[string]string) ([]domain.AlarmSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := l.logger.WithFields(map[string]any{"alarm_file": filename})

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	vars, diags := resolveVariables(content.Blocks.OfType("variable"), overrides)
	if diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(vars)},
	}

	alarmBlocks := content.Blocks.OfType("alarm")
	specs := make([]domain.AlarmSpec, 0, len(alarmBlocks))
	seen := make(map[string]hcl.Range, len(alarmBlocks))
	for _, block := range alarmBlocks {
		name := block.Labels[0]
		if first, dup := seen[name]; dup {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate alarm",
				Detail:   fmt.Sprintf("Alarm %q was already declared at %s.", name, first),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		seen[name] = block.DefRange

		var spec domain.AlarmSpec
		diags = append(diags, gohcl.DecodeBody(block.Body, evalCtx, &spec)...)
		spec.Name = name
		specs = append(specs, spec)
	}
	if diags.HasErrors() {
		return nil, diagnosticsError(filename, diags)
	}

	logger.Debugf(ctx, "Loaded %d alarms and %d variables", len(specs), len(vars))
	return specs, nil
}

// resolveVariables evaluates variable defaults and applies overrides. An
// override is converted to the type of the default when there is one.
func resolveVariables(blocks hcl.Blocks, overrides map[string]string) (map[string]cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	vars := make(map[string]cty.Value, len(blocks))
	declared := make(map[string]bool, len(blocks))

	for _, block := range blocks {
		name := block.Labels[0]
		declared[name] = true

		content, contentDiags := block.Body.Content(variableSchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		var value cty.Value
		hasValue := false
		if attr, ok := content.Attributes["default"]; ok {
			v, valDiags := attr.Expr.Value(nil)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				continue
			}
			value, hasValue = v, true
		}

		if raw, ok := overrides[name]; ok {
			override := cty.StringVal(raw)
			if hasValue && !value.IsNull() {
				converted, err := convert.Convert(override, value.Type())
				if err != nil {
					diags = diags.Append(&hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Invalid variable override",
						Detail:   fmt.Sprintf("Value %q for variable %q: %s.", raw, name, err),
						Subject:  block.DefRange.Ptr(),
					})
					continue
				}
				override = converted
			}
			value, hasValue = override, true
		}

		if !hasValue {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing variable value",
				Detail:   fmt.Sprintf("Variable %q has no default; pass it with --var %s=<value>.", name, name),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		vars[name] = value
	}

	for name := range overrides {
		if !declared[name] {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Undeclared variable",
				Detail:   fmt.Sprintf("A value was given for %q but the file declares no such variable.", name),
			})
		}
	}
	return vars, diags
}

func diagnosticsError(filename string, diags hcl.Diagnostics) error {
	return errors.WrapUserFacing(diags, errors.CodeAlarmFileError,
		fmt.Sprintf("Invalid alarm file %s", filename), diags.Error())
}
