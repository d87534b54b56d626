/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1code

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1code/ai"
	"strings"
)

// step is the outcome of reading one element.
type step struct {
	element *Element
	skipped []Fragment
	// consumed counts every byte read, separators included.
	consumed int
	// done is set when the data is exhausted.
	done bool
	// halted is set when no progress is possible.
	halted bool
}

// extractor reads elements using the AIs of a registry.
type extractor struct {
	registry *ai.Registry
}

// next reads the element starting at s[pos], after any separators.
//
// The element's span is determined by the length the registry assigns to its
// first two characters: a fixed number of characters (or fewer, if the data is
// truncated), or everything up to the next separator. The first AI whose
// prefix and additional identifier match the data claims the span; if its
// pattern matches, the captures become an Element and whatever the match left
// over is skipped. If no AI or pattern matches, the whole span is skipped.
func (x extractor) next(s string, pos int) step {
	start := pos
	for pos < len(s) && s[pos] == GroupSeparator {
		pos++
	}

	switch remaining := len(s) - pos; {
	case remaining == 0:
		return step{consumed: pos - start, done: true}
	case remaining < ai.KeyLength:
		// too short to hold an AI, but it's still data
		return step{
			skipped:  []Fragment{{Offset: pos, Text: s[pos:]}},
			consumed: len(s) - start,
			done:     true,
		}
	}

	key := s[pos : pos+ai.KeyLength]
	end := len(s)
	delimited := false
	if length, fixed := x.registry.ElementLength(key); fixed {
		if pos+length < end {
			end = pos + length
		}
	} else if i := strings.IndexByte(s[pos:], GroupSeparator); i >= 0 {
		end = pos + i
		delimited = true
	}

	if end == pos {
		return step{consumed: pos - start, halted: true}
	}

	st := step{consumed: end - start}
	if delimited {
		st.consumed++
	}

	span := s[pos:end]
	id, ok := x.registry.Match(key, s[pos+ai.KeyLength:])
	if !ok {
		st.skipped = []Fragment{{Offset: pos, Text: span}}
		return st
	}

	loc := id.Regex.FindStringSubmatchIndex(span)
	if loc == nil {
		st.skipped = []Fragment{{Offset: pos, Text: span}}
		return st
	}

	el := &Element{
		Identifier: id,
		Values:     make([]string, 0, len(loc)/2-1),
		Raw:        span[loc[0]:loc[1]],
		Offset:     pos + loc[0],
	}
	for g := 2; g < len(loc); g += 2 {
		if loc[g] < 0 {
			// optional group that didn't participate
			el.Values = append(el.Values, "")
			continue
		}
		el.Values = append(el.Values, span[loc[g]:loc[g+1]])
	}
	st.element = el

	if loc[0] > 0 {
		st.skipped = append(st.skipped, Fragment{Offset: pos, Text: span[:loc[0]]})
	}
	if loc[1] < len(span) {
		st.skipped = append(st.skipped, Fragment{Offset: pos + loc[1], Text: span[loc[1]:]})
	}
	return st
}
