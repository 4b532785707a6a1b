package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Load parses the pipeline file at path and overlays its values onto the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Model, error) {
	model := Default()
	if path == "" {
		return model, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse pipeline config %s: %w", path, diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &schema); diags.HasErrors() {
		return nil, fmt.Errorf("decode pipeline config %s: %w", path, diags)
	}
	if schema.Pipeline == nil {
		return model, nil
	}

	applyPipeline(model, schema.Pipeline)
	return model, nil
}

// applyPipeline overlays the decoded block onto the model. Unset attributes
// decode to their zero value and are ignored; zero is not a meaningful
// setting for any of these knobs.
func applyPipeline(model *Model, p *pipelineSchema) {
	if p.Workers > 0 {
		model.Workers = p.Workers
	}
	if p.TopN > 0 {
		model.TopN = p.TopN
	}
	if p.SummarySentences > 0 {
		model.SummarySentences = p.SummarySentences
	}
	if p.ManifestName != "" {
		model.ManifestName = p.ManifestName
	}
	if p.OutputName != "" {
		model.OutputName = p.OutputName
	}
	if p.ParsedDir != "" {
		model.ParsedDir = p.ParsedDir
	}
	if p.LedgerPath != "" {
		model.LedgerPath = p.LedgerPath
	}
	if h := p.Heading; h != nil {
		if h.MinFontSize > 0 {
			model.Heading.MinHeadingFontSize = h.MinFontSize
		}
		if h.MaxWords > 0 {
			model.Heading.MaxHeadingWords = h.MaxWords
		}
		if h.MaxChars > 0 {
			model.Heading.MaxHeadingChars = h.MaxChars
		}
		if h.MediumGap > 0 {
			model.Heading.MediumGap = h.MediumGap
		}
	}
}

// evalContext exposes the process environment to HCL expressions as the
// `env` map.
func evalContext() *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		envVal = cty.MapVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}
