// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"gopkg.in/yaml.v3"

	"cogentcore.org/movi/bind"
	"cogentcore.org/movi/dom"
	"cogentcore.org/movi/keypath"
	"cogentcore.org/movi/model"
)

// session is a template bound to a model. It is not safe for
// concurrent use.
type session struct {
	cfg    *Config
	doc    *dom.Document
	root   *model.Object
	engine *bind.Engine
}

// newSession loads the template and model of the given config,
// applies its model values, and binds them.
func newSession(cfg *Config) (*session, error) {
	if cfg.Template == "" {
		return nil, fmt.Errorf("no template file given")
	}
	hub := model.NewHub()
	root := model.NewObject(hub)
	if cfg.Model != "" {
		var err error
		root, err = model.Open(hub, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("loading model: %w", err)
		}
	}
	if err := applySets(root, cfg.Set); err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, root: root, engine: bind.NewEngine(root)}
	s.engine.Strict = cfg.Strict
	if err := s.loadTemplate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadTemplate parses the template file and binds it.
func (s *session) loadTemplate() error {
	data, err := os.ReadFile(s.cfg.Template)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}
	if isMarkdown(s.cfg.Template) {
		data = markdownToHTML(data)
	}
	src := string(data)
	var doc *dom.Document
	if isDocument(src) {
		doc, err = dom.ParseString(src)
	} else {
		doc, err = dom.ParseFragmentString(src)
	}
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", s.cfg.Template, err)
	}
	if s.doc != nil {
		s.doc.Destroy()
	}
	s.doc = doc
	s.engine.Bind(&doc.Element)
	s.engine.Deliver()
	slog.Debug("movi: bound template", "template", s.cfg.Template)
	return nil
}

// isDocument returns whether the given template is a complete
// document rather than a fragment.
func isDocument(src string) bool {
	head := strings.ToLower(strings.TrimSpace(src))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// isMarkdown returns whether the given template file is markdown,
// which is converted to HTML before binding.
func isMarkdown(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// markdownToHTML converts the given markdown to HTML. Raw HTML in the
// markdown is kept, so that it can carry binding annotations.
func markdownToHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return markdown.ToHTML(md, p, r)
}

// reloadModel reads the model file again and updates the bound
// model in place, so that the bindings update the document.
func (s *session) reloadModel() error {
	if s.cfg.Model == "" {
		return nil
	}
	src, err := model.Open(model.NewHub(), s.cfg.Model)
	if err != nil {
		return fmt.Errorf("reloading model: %w", err)
	}
	if err := applySets(src, s.cfg.Set); err != nil {
		return err
	}
	model.UpdateFrom(s.root, src)
	n := s.engine.Deliver()
	slog.Debug("movi: reloaded model", "model", s.cfg.Model, "batches", n)
	return nil
}

// html returns the current HTML of the document.
func (s *session) html() string {
	return s.doc.HTML()
}

// write writes the current HTML of the document to the output file
// of the config, or to the given writer if there is none.
func (s *session) write(w io.Writer) error {
	if s.cfg.Output == "" {
		return s.doc.Render(w)
	}
	f, err := os.Create(s.cfg.Output)
	if err != nil {
		return err
	}
	if err := s.doc.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// applySets applies the given path=value assignments to the model.
// Values are read as YAML scalars or collections, so that numbers,
// booleans, lists and maps get their natural types.
func applySets(root *model.Object, sets []string) error {
	for _, set := range sets {
		path, value, ok := strings.Cut(set, "=")
		if !ok || strings.TrimSpace(path) == "" {
			return fmt.Errorf("invalid --set %q: want path=value", set)
		}
		var v any = value
		if strings.TrimSpace(value) != "" {
			if err := yaml.Unmarshal([]byte(value), &v); err != nil {
				v = value
			}
		}
		if err := model.Set(root, keypath.Split(path), model.FromGo(root.Hub(), v)); err != nil {
			return fmt.Errorf("--set %s: %w", path, err)
		}
	}
	return nil
}
