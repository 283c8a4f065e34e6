// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported model file formats.
type Formats int32

const (
	// JSON is the JSON format (.json).
	JSON Formats = iota

	// TOML is the TOML format (.toml).
	TOML

	// YAML is the YAML format (.yaml, .yml).
	YAML
)

// FormatFromFilename returns the format for the extension of
// the given file name.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("model: unsupported model file extension %q", filepath.Ext(filename))
}

// Decode decodes the given data in the given format into a new [*Object]
// with the given hub. The top level of the data must be an object.
func Decode(hub *Hub, data []byte, format Formats) (*Object, error) {
	m := map[string]any{}
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, &m)
	case TOML:
		err = toml.Unmarshal(data, &m)
	case YAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = fmt.Errorf("unknown format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("model.Decode: %w", err)
	}
	return ObjectFromGo(hub, m), nil
}

// Open reads and decodes the given model file with the given hub,
// using the format of its extension.
func Open(hub *Hub, filename string) (*Object, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	o, err := Decode(hub, data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return o, nil
}

// Encode encodes the given observable value as indented JSON.
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(ToGo(v), "", "  ")
}
