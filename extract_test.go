/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1code

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1code/ai"
	"regexp"
	"testing"
)

const sep = string(GroupSeparator)

func testRegistry(t *testing.T, ids ...ai.ApplicationIdentifier) *ai.Registry {
	t.Helper()
	r, err := ai.NewRegistry(ids...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return r
}

func gtinAI() ai.ApplicationIdentifier {
	return ai.ApplicationIdentifier{
		Prefix: "01", ContentLength: 16,
		Regex: regexp.MustCompile(`^01(\d{14})`), Title: "GTIN",
	}
}

func lotAI() ai.ApplicationIdentifier {
	return ai.ApplicationIdentifier{
		Prefix: "10", ContentLength: ai.Variable,
		Regex: regexp.MustCompile(`^10([A-Z0-9]{1,5})`), Title: "BATCH/LOT",
	}
}

func TestExtractor_Next(t *testing.T) {
	x := extractor{registry: testRegistry(t,
		gtinAI(), lotAI(),
		ai.ApplicationIdentifier{
			Prefix: "99", ContentLength: ai.Variable,
			Regex: regexp.MustCompile(`(\d+)$`),
		},
	)}

	type result struct {
		consumed int
		code     string
		values   []string
		skipped  []Fragment
		done     bool
	}

	for _, tt := range []struct {
		name string
		data string
		pos  int
		exp  result
	}{
		{"fixed", "0112345678901234" + "10A", 0,
			result{consumed: 16, code: "01", values: []string{"12345678901234"}}},
		{"variable to end", "10LOT42", 0,
			result{consumed: 7, code: "10", values: []string{"LOT42"}}},
		{"variable with separator", "10LOT42" + sep + "0112345678901234", 0,
			result{consumed: 8, code: "10", values: []string{"LOT42"}}},
		{"leading separators", sep + sep + "10LOT", 0,
			result{consumed: 7, code: "10", values: []string{"LOT"}}},
		{"from position", "XXXX10LOT", 4,
			result{consumed: 5, code: "10", values: []string{"LOT"}}},
		{"truncated fixed", "0112345", 0,
			result{consumed: 7, skipped: []Fragment{{0, "0112345"}}}},
		{"regex mismatch", "0112345678901ABC", 0,
			result{consumed: 16, skipped: []Fragment{{0, "0112345678901ABC"}}}},
		{"unknown prefix", "77ABC" + sep + "10X", 0,
			result{consumed: 6, skipped: []Fragment{{0, "77ABC"}}}},
		{"trailing gap", "10ABCDEFG", 0,
			result{consumed: 9, code: "10", values: []string{"ABCDE"},
				skipped: []Fragment{{7, "FG"}}}},
		{"leading gap", "99XY123", 0,
			result{consumed: 7, code: "99", values: []string{"123"},
				skipped: []Fragment{{0, "99XY"}}}},
		{"single character", "10LOT" + sep + "7", 6,
			result{consumed: 1, skipped: []Fragment{{6, "7"}}, done: true}},
		{"only separators", sep + sep, 0,
			result{consumed: 2, done: true}},
		{"empty", "", 0,
			result{done: true}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			w := expect.WrapT(t)
			st := x.next(tt.data, tt.pos)
			w.ShouldBeEqual(st.consumed, tt.exp.consumed)
			w.ShouldBeEqual(st.done, tt.exp.done)
			w.ShouldBeFalse(st.halted)

			if tt.exp.code == "" {
				w.ShouldBeTrue(st.element == nil)
			} else {
				w.StopOnMismatch().ShouldBeTrue(st.element != nil)
				w.ShouldBeEqual(st.element.Identifier.Code(), tt.exp.code)
				w.StopOnMismatch().ShouldHaveLength(st.element.Values, len(tt.exp.values))
				for i := range tt.exp.values {
					w.ShouldBeEqual(st.element.Values[i], tt.exp.values[i])
				}
			}

			w.StopOnMismatch().ShouldHaveLength(st.skipped, len(tt.exp.skipped))
			for i, f := range tt.exp.skipped {
				w.As(fmt.Sprintf("fragment %d", i)).ShouldBeEqual(st.skipped[i].Offset, f.Offset)
				w.As(fmt.Sprintf("fragment %d", i)).ShouldBeEqual(st.skipped[i].Text, f.Text)
			}
		})
	}
}

func TestExtractor_ElementPosition(t *testing.T) {
	w := expect.WrapT(t)
	x := extractor{registry: testRegistry(t, lotAI(), ai.ApplicationIdentifier{
		Prefix: "99", ContentLength: ai.Variable,
		Regex: regexp.MustCompile(`(\d+)$`),
	})}

	st := x.next(sep+"99XY123", 0)
	w.StopOnMismatch().ShouldBeTrue(st.element != nil)
	w.ShouldBeEqual(st.element.Offset, 5)
	w.ShouldBeEqual(st.element.Raw, "123")

	st = x.next("10ABCDEFG", 0)
	w.StopOnMismatch().ShouldBeTrue(st.element != nil)
	w.ShouldBeEqual(st.element.Offset, 0)
	w.ShouldBeEqual(st.element.Raw, "10ABCDE")
}

func TestExtractor_ZeroLength(t *testing.T) {
	w := expect.WrapT(t)
	x := extractor{registry: testRegistry(t, ai.ApplicationIdentifier{
		Prefix: "99", ContentLength: 0, Regex: regexp.MustCompile(`^99`),
	})}

	st := x.next("99abc", 0)
	w.ShouldBeTrue(st.halted)
	w.ShouldBeEqual(st.consumed, 0)
	w.ShouldBeTrue(st.element == nil)
	w.ShouldHaveLength(st.skipped, 0)

	st = x.next(sep+"99abc", 0)
	w.ShouldBeTrue(st.halted)
	w.ShouldBeEqual(st.consumed, 1)
}

func TestExtractor_OptionalGroups(t *testing.T) {
	w := expect.WrapT(t)
	x := extractor{registry: ai.Default()}

	st := x.next("7007210101", 0)
	w.StopOnMismatch().ShouldBeTrue(st.element != nil)
	w.StopOnMismatch().ShouldHaveLength(st.element.Values, 2)
	w.ShouldBeEqual(st.element.Values[0], "210101")
	w.ShouldBeEqual(st.element.Values[1], "")

	x = extractor{registry: testRegistry(t, ai.ApplicationIdentifier{
		Prefix: "99", ContentLength: ai.Variable,
		Regex: regexp.MustCompile(`^99(A)?(\d+)`),
	})}
	st = x.next("99123", 0)
	w.StopOnMismatch().ShouldBeTrue(st.element != nil)
	w.StopOnMismatch().ShouldHaveLength(st.element.Values, 2)
	w.ShouldBeEqual(st.element.Values[0], "")
	w.ShouldBeEqual(st.element.Values[1], "123")
}
