// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bind

import (
	"fmt"
	"regexp"
	"strings"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/keypath"
)

// Assignment is one parsed sentence of an annotation.
type Assignment struct {

	// Object is the model side path.
	Object keypath.Path

	// Property is the view side path: the view path of attribute
	// binders, the event name of event binders and the item alias
	// of collection binders. It is nil for condition binders.
	Property keypath.Path

	// Condition is whether a condition sentence is not negated.
	Condition bool

	// Args are the call arguments of the model side, or nil
	// if it has none.
	Args []string
}

// HasArgs returns whether the assignment has call arguments.
func (a Assignment) HasArgs() bool {
	return a.Args != nil
}

// MalformedBindingExpression is the error reported in strict
// mode for a sentence that can not be parsed.
type MalformedBindingExpression struct {

	// Sentence is the malformed sentence.
	Sentence string

	// Reason describes what is wrong with it.
	Reason string
}

func (e *MalformedBindingExpression) Error() string {
	return fmt.Sprintf("malformed binding expression %q: %s", e.Sentence, e.Reason)
}

// argsRegexp matches the first non-empty parenthesized argument list.
var argsRegexp = regexp.MustCompile(`\(\s*([^)]+?)\s*\)`)

// SplitSentences splits the given annotation on ';', trimming each
// sentence and dropping the empty ones.
func SplitSentences(text string) []string {
	var res []string
	for _, s := range strings.Split(text, ";") {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

// ParseAssignments parses each sentence of the given annotation into
// an [Assignment] with the given separator, which is empty for
// condition annotations. Sentences that can not be parsed are skipped.
func ParseAssignments(text, sep string) []Assignment {
	var res []Assignment
	for _, s := range SplitSentences(text) {
		if a, err := parseSentence(s, sep); err == nil {
			res = append(res, a)
		}
	}
	return res
}

// ParseAssignmentsStrict is like [ParseAssignments], but it also returns
// a [*MalformedBindingExpression] for each sentence that can not be parsed,
// joined into one error.
func ParseAssignmentsStrict(text, sep string) ([]Assignment, error) {
	var res []Assignment
	var errs []error
	for _, s := range SplitSentences(text) {
		a, err := parseSentence(s, sep)
		if err == nil && strings.Count(s, "(") != strings.Count(s, ")") {
			err = &MalformedBindingExpression{Sentence: s, Reason: "unbalanced parentheses"}
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res = append(res, a)
	}
	return res, errors.Join(errs...)
}

func parseSentence(sentence, sep string) (Assignment, error) {
	malformed := func(reason string) (Assignment, error) {
		return Assignment{}, &MalformedBindingExpression{Sentence: sentence, Reason: reason}
	}
	if sep == "" {
		object := strings.TrimSpace(strings.Replace(sentence, "!", "", 1))
		if object == "" {
			return malformed("missing condition path")
		}
		return Assignment{Object: keypath.Split(object), Condition: !strings.Contains(sentence, "!")}, nil
	}
	property, object, ok := strings.Cut(sentence, sep)
	if !ok {
		return malformed(fmt.Sprintf("missing %q", strings.TrimSpace(sep)))
	}
	property = strings.TrimSpace(property)
	if property == "" {
		return malformed("missing view side")
	}
	a := Assignment{Property: keypath.Split(property)}
	if m := argsRegexp.FindStringSubmatchIndex(object); m != nil {
		for _, arg := range strings.Split(object[m[2]:m[3]], ",") {
			a.Args = append(a.Args, strings.TrimSpace(arg))
		}
		object = object[:m[0]] + object[m[1]:]
	}
	object = strings.TrimSpace(strings.Replace(object, "()", "", 1))
	if object == "" {
		return malformed("missing model side")
	}
	a.Object = keypath.Split(object)
	return a, nil
}
