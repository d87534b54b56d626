/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"github.com/pkg/errors"
	"regexp"
	"strings"
)

const (
	// KeyLength is the number of leading characters of an element string used
	// to dispatch it to its candidate Application Identifiers.
	KeyLength = 2

	// Variable is the ContentLength of an element that is terminated by a
	// group separator (or the end of the data) instead of having a fixed size.
	Variable = -1
)

// ApplicationIdentifier defines one GS1 Application Identifier: how to find
// it in an element string and how to split its data into values.
//
// Prefix holds the AI as it's registered; its first KeyLength characters are
// the dispatch key. If it has exactly 4 characters, the 4th one is the implied
// decimal position of the element's value (e.g., "3103" is a net weight in kg
// with 3 decimal places).
//
// AdditionalIdentifier is an optional literal that must follow the Prefix to
// select this AI among others sharing the same key. For example, "Best before
// date" and "Expiration date" could be registered with the key "1" and the
// additional identifiers "5" and "7", respectively.
//
// ContentLength is the length of the whole element, prefix included, or
// Variable.
//
// Regex is applied to the element's raw text, prefix included; its capture
// groups become the element's values.
type ApplicationIdentifier struct {
	Prefix               string
	AdditionalIdentifier string
	ContentLength        int
	Regex                *regexp.Regexp
	Title                string
}

// Key returns the dispatch key of the AI.
func (id ApplicationIdentifier) Key() string {
	if len(id.Prefix) < KeyLength {
		return id.Prefix
	}
	return id.Prefix[:KeyLength]
}

// Code returns the full AI as it appears in a human readable element string,
// i.e., the prefix followed by the additional identifier.
func (id ApplicationIdentifier) Code() string {
	return id.Prefix + id.AdditionalIdentifier
}

// IsVariable returns true if the AI's data is terminated by a separator.
func (id ApplicationIdentifier) IsVariable() bool {
	return id.ContentLength == Variable
}

// Matches returns true if rest, the data following this AI's dispatch key,
// starts with the remainder of the prefix and the additional identifier.
func (id ApplicationIdentifier) Matches(rest string) bool {
	return strings.HasPrefix(rest, id.Prefix[KeyLength:]) &&
		strings.HasPrefix(rest[len(id.Prefix)-KeyLength:], id.AdditionalIdentifier)
}

func (id ApplicationIdentifier) String() string {
	if id.Title == "" {
		return id.Code()
	}
	return fmt.Sprintf("%s (%s)", id.Code(), id.Title)
}

func (id ApplicationIdentifier) validate() error {
	if len(id.Prefix) < KeyLength {
		return errors.Errorf("prefix %q must have at least %d characters",
			id.Prefix, KeyLength)
	}
	if id.Regex == nil {
		return errors.Errorf("AI %s has no regular expression", id.Code())
	}
	if id.ContentLength < Variable {
		return errors.Errorf("AI %s has invalid content length %d; "+
			"use a length >= 0 or Variable", id.Code(), id.ContentLength)
	}
	return nil
}

// Registry maps dispatch keys to their candidate Application Identifiers.
//
// A Registry is never modified after NewRegistry returns it, so it's safe to
// share among goroutines.
type Registry struct {
	all        []ApplicationIdentifier
	candidates map[string][]ApplicationIdentifier
	lengths    map[string]int
}

// NewRegistry returns a Registry of the given AIs, or an error if any of them
// is invalid.
//
// Candidates sharing a key are tried in the order they're given here: if more
// than one matches an element string, the first one wins.
func NewRegistry(ais ...ApplicationIdentifier) (*Registry, error) {
	r := &Registry{
		all:        make([]ApplicationIdentifier, 0, len(ais)),
		candidates: make(map[string][]ApplicationIdentifier),
		lengths:    make(map[string]int),
	}

	for i, id := range ais {
		if err := id.validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid AI at index %d", i)
		}
		key := id.Key()
		r.all = append(r.all, id)
		r.candidates[key] = append(r.candidates[key], id)

		// a key has a fixed length only if all its candidates agree on it
		if l, ok := r.lengths[key]; !ok {
			r.lengths[key] = id.ContentLength
		} else if l != id.ContentLength {
			r.lengths[key] = Variable
		}
	}

	return r, nil
}

// ElementLength returns the length of elements starting with key, and whether
// that length is fixed. Unknown keys have variable length.
func (r *Registry) ElementLength(key string) (length int, fixed bool) {
	l, ok := r.lengths[key]
	if !ok || l == Variable {
		return Variable, false
	}
	return l, true
}

// ByPrefix returns the candidates registered for key, in registration order.
//
// The returned slice must not be modified.
func (r *Registry) ByPrefix(key string) []ApplicationIdentifier {
	return r.candidates[key]
}

// Match returns the first candidate for key whose remaining prefix and
// additional identifier start rest, the data following the key.
func (r *Registry) Match(key, rest string) (ApplicationIdentifier, bool) {
	for _, id := range r.candidates[key] {
		if id.Matches(rest) {
			return id, true
		}
	}
	return ApplicationIdentifier{}, false
}

// Lookup returns the AI registered with the given code.
func (r *Registry) Lookup(code string) (ApplicationIdentifier, bool) {
	if len(code) < KeyLength {
		return ApplicationIdentifier{}, false
	}
	for _, id := range r.candidates[code[:KeyLength]] {
		if id.Code() == code {
			return id, true
		}
	}
	return ApplicationIdentifier{}, false
}

// All returns every AI in registration order.
func (r *Registry) All() []ApplicationIdentifier {
	out := make([]ApplicationIdentifier, len(r.all))
	copy(out, r.all)
	return out
}

// Len returns the number of registered AIs.
func (r *Registry) Len() int {
	return len(r.all)
}
