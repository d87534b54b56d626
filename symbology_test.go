/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1code

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"testing"
)

func TestStripSymbology(t *testing.T) {
	for _, tt := range []struct {
		raw, rest string
		sym       Symbology
	}{
		{"]C1010012345678901231", "010012345678901231", GS1128},
		{"]e00112345678901231", "0112345678901231", GS1DataBar},
		{"]d2x", "x", GS1DataMatrix},
		{"]Q3", "", GS1QRCode},
		{"]J1]C1", "]C1", GS1DotCode},
		{"]E0ABC", "]E0ABC", Symbology{}},
		{"]C", "]C", Symbology{}},
		{"0112345678901231", "0112345678901231", Symbology{}},
		{"", "", Symbology{}},
	} {
		t.Run(tt.raw, func(t *testing.T) {
			w := expect.WrapT(t)
			sym, rest := StripSymbology(tt.raw)
			w.ShouldBeEqual(sym, tt.sym)
			w.ShouldBeEqual(rest, tt.rest)
		})
	}
}

func TestSymbology_String(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(GS1128.String(), "GS1-128 (]C1)")
	w.ShouldBeEqual(Symbology{}.String(), "none")
	w.ShouldHaveLength(Symbologies(), 5)
}
