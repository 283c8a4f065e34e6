// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keypath converts between the textual forms of a key path
// (dotted `a.b.3.c` and indexed `a.b[3].c`) and its ordered segments.
// Key paths address locations in both the model and the view.
package keypath

import (
	"strconv"
	"strings"
)

// Path is an ordered list of key path segments. A segment is either
// a property name or a non-negative integer index in decimal form.
type Path []string

// Split returns the segments of the given path string. It trims the
// string and splits it on '.', also accepting bracketed indices, so
// that both `a.b.3.c` and `a.b[3].c` result in [a b 3 c]. Empty
// segments, as in `a..b`, are kept.
func Split(s string) Path {
	s = strings.TrimSpace(s)
	if !strings.ContainsRune(s, '[') {
		return strings.Split(s, ".")
	}
	var p Path
	for _, part := range strings.Split(s, ".") {
		indexed := false
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				break
			}
			end := strings.IndexByte(part[open:], ']')
			if end < 0 {
				break
			}
			end += open
			if open > 0 {
				p = append(p, part[:open])
			}
			p = append(p, strings.TrimSpace(part[open+1:end]))
			part = part[end+1:]
			indexed = true
		}
		if part != "" || !indexed {
			p = append(p, part)
		}
	}
	return p
}

// IsIndex returns the integer value of the given segment and whether
// it is an index segment, which only has decimal digits.
func IsIndex(seg string) (int, bool) {
	seg = strings.TrimSpace(seg)
	if seg == "" || strings.TrimLeft(seg, "0123456789") != "" {
		return 0, false
	}
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Dotted returns the path joined with '.'.
func (p Path) Dotted() string {
	return strings.Join(p, ".")
}

// Indexed returns the path with index segments rendered as `[n]`
// directly after the preceding segment, as in `a.b[3].c`.
func (p Path) Indexed() string {
	var b strings.Builder
	for i, seg := range p {
		if _, ok := IsIndex(seg); ok {
			b.WriteByte('[')
			b.WriteString(strings.TrimSpace(seg))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// First returns the first segment, or "" for an empty path.
func (p Path) First() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Last returns the last segment, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns all but the last segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Clone returns a copy of the path that can be modified independently.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path{}, p...)
}

// Equal returns whether the two paths have the same segments.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String implements [fmt.Stringer] with the dotted form.
func (p Path) String() string {
	return p.Dotted()
}

// Indexed is a helper that re-encodes the given dotted or indexed
// path string in indexed form.
func Indexed(s string) string {
	return Split(s).Indexed()
}
