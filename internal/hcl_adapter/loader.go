package hcl_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/numwords/internal/config"
	"github.com/vk/numwords/internal/ctxlog"
	"github.com/vk/numwords/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL configuration loader that exposes the process
// environment to expressions.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// NewLoaderWithEnv creates a loader whose `env` variable is built from the
// given KEY=VALUE pairs instead of the process environment.
func NewLoaderWithEnv(environ []string) *Loader {
	return &Loader{environ: func() []string { return environ }}
}

// fileRoot is a struct used to decode all top-level blocks from a file.
type fileRoot struct {
	Prompts []*promptsBlock `hcl:"prompts,block"`
	Style   []*styleBlock   `hcl:"style,block"`
}

type promptsBlock struct {
	Number   *string   `hcl:"number,optional"`
	Result   *string   `hcl:"result,optional"`
	Continue *string   `hcl:"continue,optional"`
	Retry    *string   `hcl:"retry,optional"`
	Goodbye  *string   `hcl:"goodbye,optional"`
	DefRange hcl.Range `hcl:",def_range"`
}

type styleBlock struct {
	UseAnd    *bool     `hcl:"use_and,optional"`
	Hyphenate *bool     `hcl:"hyphenate,optional"`
	Bits      *int      `hcl:"bits,optional"`
	DefRange  hcl.Range `hcl:",def_range"`
}

// Load parses every file reachable from paths and merges its blocks over
// config.Default(). With no paths it returns the defaults unchanged.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.Default()
	if len(paths) == 0 {
		return model, nil
	}

	files, err := fsutil.ResolveFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.environ())

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if diags := root.checkUnique(); diags.HasErrors() {
			return nil, fmt.Errorf("invalid HCL file %s: %w", file, diags)
		}

		root.mergeInto(model)
		logger.Debug("HCL file merged.", "file", file, "prompts_blocks", len(root.Prompts), "style_blocks", len(root.Style))
	}

	logger.Debug("HCL loading complete.", "files", len(files), "bits", model.Style.Bits)
	return model, nil
}

// checkUnique rejects files that declare a block type more than once.
func (r *fileRoot) checkUnique() hcl.Diagnostics {
	var diags hcl.Diagnostics
	for i := 1; i < len(r.Prompts); i++ {
		diags = append(diags, duplicateBlock("prompts", r.Prompts[i].DefRange))
	}
	for i := 1; i < len(r.Style); i++ {
		diags = append(diags, duplicateBlock("style", r.Style[i].DefRange))
	}
	return diags
}

func duplicateBlock(name string, rng hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate \"" + name + "\" block",
		Detail:   "Only one \"" + name + "\" block is allowed per file.",
		Subject:  rng.Ptr(),
	}
}

// mergeInto copies every attribute set in the file onto the model.
func (r *fileRoot) mergeInto(m *config.Model) {
	if len(r.Prompts) > 0 {
		p := r.Prompts[0]
		setIf(&m.Prompts.Number, p.Number)
		setIf(&m.Prompts.Result, p.Result)
		setIf(&m.Prompts.Continue, p.Continue)
		setIf(&m.Prompts.Retry, p.Retry)
		setIf(&m.Prompts.Goodbye, p.Goodbye)
	}
	if len(r.Style) > 0 {
		s := r.Style[0]
		setIf(&m.Style.UseAnd, s.UseAnd)
		setIf(&m.Style.Hyphenate, s.Hyphenate)
		setIf(&m.Style.Bits, s.Bits)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
