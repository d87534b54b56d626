/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1code

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1code/ai"
	"github.com/shopspring/decimal"
)

// decimalPrefixLen is the length of AI prefixes which carry a decimal position
// in their final digit.
const decimalPrefixLen = 4

// DecimalValue returns values[0] divided by 10^d, where d is the 4th digit of
// the AI's prefix; for instance, (3202) with the value "001234" is 12.34. The
// value is returned unchanged if d is 0.
//
// It returns false if the prefix doesn't have exactly 4 characters, its 4th
// character isn't a digit, or there's no first value or it isn't a number.
func DecimalValue(id ai.ApplicationIdentifier, values []string) (decimal.Decimal, bool) {
	return decimalAt(id, values, 0)
}

func decimalAt(id ai.ApplicationIdentifier, values []string, i int) (decimal.Decimal, bool) {
	if len(id.Prefix) != decimalPrefixLen || i < 0 || i >= len(values) {
		return decimal.Decimal{}, false
	}

	digit := id.Prefix[decimalPrefixLen-1]
	if digit < '0' || digit > '9' {
		return decimal.Decimal{}, false
	}

	v, err := decimal.NewFromString(values[i])
	if err != nil {
		return decimal.Decimal{}, false
	}

	if digit == '0' {
		return v, true
	}
	return v.Shift(-int32(digit - '0')), true
}
