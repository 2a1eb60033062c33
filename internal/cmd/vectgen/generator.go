package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/hupe1980/typevec/internal/logging"
)

const (
	natFile        = "nat_gen.go"
	positionalFile = "positional_gen.go"
)

var natTemplate = template.Must(template.New(natFile).Funcs(template.FuncMap{
	"dec": func(n int) int { return n - 1 },
}).Parse(`// Code generated by internal/cmd/vectgen. DO NOT EDIT.

package {{.Package}}
{{range .Lengths}}
// U{{.}} is the static length {{.}}.
type U{{.}} = {{if eq . 0}}Zero{{else}}Succ[U{{dec .}}]{{end}}
{{end}}`))

var positionalTemplate = template.Must(template.New(positionalFile).Parse(`// Code generated by internal/cmd/vectgen. DO NOT EDIT.

package {{.Package}}
{{range .Rules}}
// {{.Name}} {{.Doc}}
{{.Signature}} {
	{{.Body}}
}
{{end}}`))

// Generator renders the generated sources of the typevec package.
type Generator struct {
	cfg    Config
	logger *logging.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *logging.Logger) Option {
	return func(g *Generator) {
		if l == nil {
			l = logging.NoopLogger()
		}
		g.logger = l
	}
}

// NewGenerator creates a Generator for cfg.
func NewGenerator(cfg Config, optFns ...Option) *Generator {
	g := &Generator{
		cfg:    cfg,
		logger: logging.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(g)
	}
	return g
}

type output struct {
	name  string
	tmpl  *template.Template
	data  any
	decls int
}

// Render returns the formatted generated files keyed by file name.
func (g *Generator) Render(ctx context.Context) (map[string][]byte, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	rules, err := Plan(g.cfg.MaxIndex)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	for _, r := range rules {
		g.logger.WithRule(string(r.Op), r.Index).DebugContext(ctx, "rule planned",
			"in", r.In.String(),
			"out", r.Out.String(),
		)
	}

	lengths := make([]int, g.cfg.MaxLength+1)
	for i := range lengths {
		lengths[i] = i
	}

	outputs := []output{
		{
			name:  natFile,
			tmpl:  natTemplate,
			data:  map[string]any{"Package": g.cfg.Package, "Lengths": lengths},
			decls: len(lengths),
		},
		{
			name:  positionalFile,
			tmpl:  positionalTemplate,
			data:  map[string]any{"Package": g.cfg.Package, "Rules": rules},
			decls: len(rules),
		},
	}

	srcs := make([][]byte, len(outputs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, o := range outputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := render(o)
			g.logger.WithFile(o.name).LogRender(ctx, o.name, o.decls, err)
			if err != nil {
				return err
			}
			srcs[i] = src
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(outputs))
	for i, o := range outputs {
		files[o.name] = srcs[i]
	}
	return files, nil
}

func render(o output) ([]byte, error) {
	var buf bytes.Buffer
	if err := o.tmpl.Execute(&buf, o.data); err != nil {
		return nil, fmt.Errorf("execute %s: %w", o.name, err)
	}

	src, err := imports.Process(o.name, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", o.name, err)
	}
	return src, nil
}

// Generate renders the files and writes them to the output directory.
func (g *Generator) Generate(ctx context.Context) error {
	files, err := g.Render(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(g.cfg.Output, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, name := range []string{natFile, positionalFile} {
		path := filepath.Join(g.cfg.Output, name)
		src := files[name]
		err := os.WriteFile(path, src, 0o644) // nolint gosec
		g.logger.LogWrite(ctx, path, len(src), err)
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
