// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config is the configuration of the movi command. It can be loaded
// from a TOML file, with flags given on the command line taking
// precedence over it.
type Config struct {

	// Template is the HTML template file.
	Template string `toml:"template"`

	// Model is the model file.
	Model string `toml:"model"`

	// Output is the output file, or stdout if empty.
	Output string `toml:"output"`

	// Set are model values to set before rendering, as path=value.
	Set []string `toml:"set"`

	// Strict is whether malformed binding expressions are reported.
	Strict bool `toml:"strict"`

	// Addr is the address the serve command listens on.
	Addr string `toml:"addr"`
}

// expandPaths expands a leading ~ in the file names of the config
// to the home directory.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Template, &c.Model, &c.Output} {
		if *p == "" {
			continue
		}
		e, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = e
	}
	return nil
}

// Load loads the given TOML file into the config, keeping the values
// of the given flags that were set on the command line.
func (c *Config) Load(filename string, flags *pflag.FlagSet) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	var fc Config
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("loading config %s: %w", filename, err)
	}
	changed := func(name string) bool {
		return flags != nil && flags.Changed(name)
	}
	if !changed("template") && fc.Template != "" {
		c.Template = fc.Template
	}
	if !changed("model") && fc.Model != "" {
		c.Model = fc.Model
	}
	if !changed("output") && fc.Output != "" {
		c.Output = fc.Output
	}
	if !changed("set") && len(fc.Set) > 0 {
		c.Set = fc.Set
	}
	if !changed("strict") && fc.Strict {
		c.Strict = true
	}
	if !changed("addr") && fc.Addr != "" {
		c.Addr = fc.Addr
	}
	return nil
}
