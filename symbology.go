/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1code

import "strings"

// Symbology is a symbology identifier a scanner may prepend to its data.
type Symbology struct {
	Identifier string
	Name       string
}

var (
	GS1128        = Symbology{Identifier: "]C1", Name: "GS1-128"}
	GS1DataBar    = Symbology{Identifier: "]e0", Name: "GS1 DataBar"}
	GS1DataMatrix = Symbology{Identifier: "]d2", Name: "GS1 DataMatrix"}
	GS1QRCode     = Symbology{Identifier: "]Q3", Name: "GS1 QR Code"}
	GS1DotCode    = Symbology{Identifier: "]J1", Name: "GS1 DotCode"}
)

// Symbologies lists the identifiers of symbologies that carry GS1 element
// strings, in the order they're checked.
func Symbologies() []Symbology {
	return []Symbology{GS1128, GS1DataBar, GS1DataMatrix, GS1QRCode, GS1DotCode}
}

func (s Symbology) String() string {
	if s.Identifier == "" {
		return "none"
	}
	return s.Name + " (" + s.Identifier + ")"
}

// StripSymbology removes the GS1 symbology identifier from the start of raw,
// if it has one, and returns it along with the remaining data. If raw has no
// such identifier, it's returned unchanged along with the zero Symbology.
func StripSymbology(raw string) (Symbology, string) {
	return stripSymbology(Symbologies(), raw)
}

// stripSymbology removes at most one identifier; scanners never send more.
func stripSymbology(known []Symbology, raw string) (Symbology, string) {
	for _, s := range known {
		if strings.HasPrefix(raw, s.Identifier) {
			return s, raw[len(s.Identifier):]
		}
	}
	return Symbology{}, raw
}
