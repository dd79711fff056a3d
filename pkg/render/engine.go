// Package render produces the HTML fragments the editor injects into the
// page: formset rows, duplicate-candidate table rows, filter toggles, and
// group notices. Templates are pongo2 and ship embedded; callers may swap
// in their own bundle.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// EngineOption configures the template engine before construction.
type EngineOption func(*engineConfig)

type engineConfig struct {
	files     fs.FS
	baseDir   string
	extension string
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) EngineOption {
	return func(cfg *engineConfig) {
		cfg.files = files
	}
}

// WithDir loads templates from a directory on disk.
func WithDir(dir string) EngineOption {
	return func(cfg *engineConfig) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithExtension overrides the default ".tmpl" template extension.
func WithExtension(ext string) EngineOption {
	return func(cfg *engineConfig) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// Engine is a cached pongo2 template set.
type Engine struct {
	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
	ext   string
}

// NewEngine constructs an engine from the provided options. At least one
// template source is required.
func NewEngine(options ...EngineOption) (*Engine, error) {
	cfg := engineConfig{extension: ".tmpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.files == nil && cfg.baseDir == "" {
		return nil, errors.New("render: template source required")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("render: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}

	return &Engine{
		set:   pongo2.NewSet("formset", loaders...),
		cache: make(map[string]*pongo2.Template),
		ext:   cfg.extension,
	}, nil
}

// Render executes the named template with the supplied context.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("render: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}

	tmpl, err := e.template(path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return "", fmt.Errorf("render: execute %q: %w", path, err)
	}
	return buf.String(), nil
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}
