/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

var (
	// valid characters for GS1 Application Identifiers (character set 82)
	cset82 = [127]uint8{
		'!': 1, '"': 1, '%': 1, '&': 1, '\'': 1, '(': 1, ')': 1,
		'*': 1, '+': 1, ',': 1, '-': 1, '.': 1, '/': 1,
		':': 1, ';': 1, '<': 1, '=': 1, '>': 1, '?': 1, '_': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}

	// valid characters for GS1 Application Identifiers for Component and Parts
	// (character set 39)
	cset39 = [127]uint8{
		'#': 1, '-': 1, '/': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	}
)

// Regular expression character classes matching the sets above. The default
// table builds its patterns from these.
const (
	ClassCSet82 = `[!"%&'()*+,\-./0-9:;<=>?A-Z_a-z]`
	ClassCSet39 = `[#\-/0-9A-Z]`
	ClassDigit  = `[0-9]`
)

// IsEncodable returns true if the string contains only characters allowed in
// the GS1 Application Identifier character set 82.
func IsEncodable(s string) bool {
	return inSet(&cset82, s)
}

// IsCompPartEncodable returns true if the string contains only characters
// allowed in the GS1 character set 39 used by Component and Parts AIs.
func IsCompPartEncodable(s string) bool {
	return inSet(&cset39, s)
}

func inSet(set *[127]uint8, s string) bool {
	for i := range s {
		if !(s[i] < 127 && set[s[i]] == 1) {
			return false
		}
	}
	return true
}
