/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"regexp"
	"sync"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a Registry of the Application Identifiers defined by the
// GS1 General Specifications, built on first use.
//
// AIs with an implied decimal point (310n-369n, 390n-395n) are registered with
// their full 4 digit prefix. Every other AI is registered with its 2 digit key
// as prefix and the rest of the AI as its additional identifier, so that
// (3102) exposes a decimal value but (7003) does not.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(gs1Table()...)
		if err != nil {
			panic(fmt.Sprintf("invalid GS1 AI table: %+v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// field describes the data following an AI: a pattern with capture groups,
// and its length in characters if it's fixed, or Variable.
type field struct {
	pattern string
	length  int
}

// n is a fixed-length numeric field.
func n(length int) field {
	return field{fmt.Sprintf("(%s{%d})", ClassDigit, length), length}
}

// nv is a numeric field of at most max digits.
func nv(max int) field {
	return field{fmt.Sprintf("(%s{1,%d})", ClassDigit, max), Variable}
}

// x is a fixed-length alphanumeric field.
func x(length int) field {
	return field{fmt.Sprintf("(%s{%d})", ClassCSet82, length), length}
}

// xv is an alphanumeric field of at most max characters.
func xv(max int) field {
	return field{fmt.Sprintf("(%s{1,%d})", ClassCSet82, max), Variable}
}

// opt is a trailing component which may be omitted.
func opt(class string, max int) field {
	return field{fmt.Sprintf("(%s{0,%d})", class, max), Variable}
}

// cat joins fields in order; the result is fixed only if every part is.
func cat(fields ...field) field {
	out := field{}
	for _, f := range fields {
		out.pattern += f.pattern
		if out.length == Variable || f.length == Variable {
			out.length = Variable
		} else {
			out.length += f.length
		}
	}
	return out
}

func build(prefix, additional string, f field, title string) ApplicationIdentifier {
	code := prefix + additional
	length := Variable
	if f.length != Variable {
		length = len(code) + f.length
	}
	return ApplicationIdentifier{
		Prefix:               prefix,
		AdditionalIdentifier: additional,
		ContentLength:        length,
		Regex:                regexp.MustCompile("^" + regexp.QuoteMeta(code) + f.pattern),
		Title:                title,
	}
}

// def registers a non-decimal AI under its 2 digit key.
func def(code string, f field, title string) ApplicationIdentifier {
	return build(code[:KeyLength], code[KeyLength:], f, title)
}

// decimals registers the AIs base+"0" through base+"max" with the decimal
// position in their 4th digit.
func decimals(base string, max int, f field, title string) []ApplicationIdentifier {
	ids := make([]ApplicationIdentifier, 0, max+1)
	for d := 0; d <= max; d++ {
		ids = append(ids, build(fmt.Sprintf("%s%d", base, d), "", f, title))
	}
	return ids
}

// sequence registers the AIs base+"0" through base+"9" that share a format.
func sequence(base string, f field, title string) []ApplicationIdentifier {
	ids := make([]ApplicationIdentifier, 0, 10)
	for s := 0; s <= 9; s++ {
		ids = append(ids, def(fmt.Sprintf("%s%d", base, s), f, fmt.Sprintf("%s %d", title, s)))
	}
	return ids
}

// measures lists the 3 digit bases of the 6 digit trade and logistic
// measures, in AI order.
var measures = []struct {
	base, title string
}{
	{"310", "NET WEIGHT (kg)"}, {"311", "LENGTH (m)"}, {"312", "WIDTH (m)"},
	{"313", "HEIGHT (m)"}, {"314", "AREA (m2)"}, {"315", "NET VOLUME (l)"},
	{"316", "NET VOLUME (m3)"},
	{"320", "NET WEIGHT (lb)"}, {"321", "LENGTH (i)"}, {"322", "LENGTH (f)"},
	{"323", "LENGTH (y)"}, {"324", "WIDTH (i)"}, {"325", "WIDTH (f)"},
	{"326", "WIDTH (y)"}, {"327", "HEIGHT (i)"}, {"328", "HEIGHT (f)"},
	{"329", "HEIGHT (y)"}, {"330", "GROSS WEIGHT (kg)"}, {"331", "LENGTH (m), log"},
	{"332", "WIDTH (m), log"}, {"333", "HEIGHT (m), log"}, {"334", "AREA (m2), log"},
	{"335", "VOLUME (l), log"}, {"336", "VOLUME (m3), log"}, {"337", "KG PER m2"},
	{"340", "GROSS WEIGHT (lb)"}, {"341", "LENGTH (i), log"}, {"342", "LENGTH (f), log"},
	{"343", "LENGTH (y), log"}, {"344", "WIDTH (i), log"}, {"345", "WIDTH (f), log"},
	{"346", "WIDTH (y), log"}, {"347", "HEIGHT (i), log"}, {"348", "HEIGHT (f), log"},
	{"349", "HEIGHT (y), log"}, {"350", "AREA (i2)"}, {"351", "AREA (f2)"},
	{"352", "AREA (y2)"}, {"353", "AREA (i2), log"}, {"354", "AREA (f2), log"},
	{"355", "AREA (y2), log"}, {"356", "NET WEIGHT (t)"}, {"357", "NET VOLUME (oz)"},
	{"360", "NET VOLUME (q)"}, {"361", "NET VOLUME (g)"}, {"362", "VOLUME (q), log"},
	{"363", "VOLUME (g), log"}, {"364", "VOLUME (i3)"}, {"365", "VOLUME (f3)"},
	{"366", "VOLUME (y3)"}, {"367", "VOLUME (i3), log"}, {"368", "VOLUME (f3), log"},
	{"369", "VOLUME (y3), log"},
}

func gs1Table() []ApplicationIdentifier {
	ids := []ApplicationIdentifier{
		def("00", n(18), "SSCC"),
		def("01", n(14), "GTIN"),
		def("02", n(14), "CONTENT"),
		def("10", xv(20), "BATCH/LOT"),
		def("11", n(6), "PROD DATE"),
		def("12", n(6), "DUE DATE"),
		def("13", n(6), "PACK DATE"),
		def("15", n(6), "BEST BEFORE or BEST BY"),
		def("16", n(6), "SELL BY"),
		def("17", n(6), "USE BY or EXPIRY"),
		def("20", n(2), "VARIANT"),
		def("21", xv(20), "SERIAL"),
		def("22", xv(20), "CPV"),
		def("235", xv(28), "TPX"),
		def("240", xv(30), "ADDITIONAL ID"),
		def("241", xv(30), "CUST. PART No."),
		def("242", nv(6), "MTO VARIANT"),
		def("243", xv(20), "PCN"),
		def("250", xv(30), "SECONDARY SERIAL"),
		def("251", xv(30), "REF. TO SOURCE"),
		def("253", cat(n(13), opt(ClassCSet82, 17)), "GDTI"),
		def("254", xv(20), "GLN EXTENSION COMPONENT"),
		def("255", cat(n(13), opt(ClassDigit, 12)), "GCN"),
		def("30", nv(8), "VAR. COUNT"),
		def("37", nv(8), "COUNT"),
	}

	for _, m := range measures {
		ids = append(ids, decimals(m.base, 9, n(6), m.title)...)
	}

	ids = append(ids, decimals("390", 9, nv(15), "AMOUNT")...)
	ids = append(ids, decimals("391", 9, cat(n(3), nv(15)), "AMOUNT")...)
	ids = append(ids, decimals("392", 9, nv(15), "PRICE")...)
	ids = append(ids, decimals("393", 9, cat(n(3), nv(15)), "PRICE")...)
	ids = append(ids, decimals("394", 4, n(4), "PRCNT OFF")...)
	ids = append(ids, decimals("395", 6, n(6), "PRICE/UoM")...)

	ids = append(ids,
		def("400", xv(30), "ORDER NUMBER"),
		def("401", xv(30), "GINC"),
		def("402", n(17), "GSIN"),
		def("403", xv(30), "ROUTE"),
		def("410", n(13), "SHIP TO LOC"),
		def("411", n(13), "BILL TO"),
		def("412", n(13), "PURCHASE FROM"),
		def("413", n(13), "SHIP FOR LOC"),
		def("414", n(13), "LOC No."),
		def("415", n(13), "PAY TO"),
		def("416", n(13), "PROD/SERV LOC"),
		def("417", n(13), "PARTY"),
		def("420", xv(20), "SHIP TO POST"),
		def("421", cat(n(3), xv(9)), "SHIP TO POST"),
		def("422", n(3), "ORIGIN"),
		def("423", cat(n(3), nv(12)), "COUNTRY - INITIAL PROCESS."),
		def("424", n(3), "COUNTRY - PROCESS."),
		def("425", cat(n(3), nv(12)), "COUNTRY - DISASSEMBLY"),
		def("426", n(3), "COUNTRY - FULL PROCESS"),
		def("427", xv(3), "ORIGIN SUBDIVISION"),
		def("4300", xv(35), "SHIP TO COMP"),
		def("4301", xv(35), "SHIP TO NAME"),
		def("4302", xv(70), "SHIP TO ADD1"),
		def("4303", xv(70), "SHIP TO ADD2"),
		def("4304", xv(70), "SHIP TO SUB"),
		def("4305", xv(70), "SHIP TO LOC"),
		def("4306", xv(70), "SHIP TO REG"),
		def("4307", x(2), "SHIP TO COUNTRY"),
		def("4308", xv(30), "SHIP TO PHONE"),
		def("4309", n(20), "SHIP TO GEO"),
		def("4310", xv(35), "RTN TO COMP"),
		def("4311", xv(35), "RTN TO NAME"),
		def("4312", xv(70), "RTN TO ADD1"),
		def("4313", xv(70), "RTN TO ADD2"),
		def("4314", xv(70), "RTN TO SUB"),
		def("4315", xv(70), "RTN TO LOC"),
		def("4316", xv(70), "RTN TO REG"),
		def("4317", x(2), "RTN TO COUNTRY"),
		def("4318", xv(20), "RTN TO POST"),
		def("4319", xv(30), "RTN TO PHONE"),
		def("4320", xv(35), "SRV DESCRIPTION"),
		def("4321", n(1), "DANGEROUS GOODS"),
		def("4322", n(1), "AUTH TO LEAVE"),
		def("4323", n(1), "SIG REQUIRED"),
		def("4324", n(10), "NBEF DEL DT."),
		def("4325", n(10), "NAFT DEL DT."),
		def("4326", n(6), "REL DATE"),
		def("7001", n(13), "NSN"),
		def("7002", xv(30), "MEAT CUT"),
		def("7003", n(10), "EXPIRY TIME"),
		def("7004", nv(4), "ACTIVE POTENCY"),
		def("7005", xv(12), "CATCH AREA"),
		def("7006", n(6), "FIRST FREEZE DATE"),
		def("7007", cat(n(6), opt(ClassDigit, 6)), "HARVEST DATE"),
		def("7008", xv(3), "AQUATIC SPECIES"),
		def("7009", xv(10), "FISHING GEAR TYPE"),
		def("7010", xv(2), "PROD METHOD"),
		def("7020", xv(20), "REFURB LOT"),
		def("7021", xv(20), "FUNC STAT"),
		def("7022", xv(20), "REV STAT"),
		def("7023", xv(30), "GIAI - ASSEMBLY"),
	)
	ids = append(ids, sequence("703", cat(n(3), opt(ClassCSet82, 27)), "PROCESSOR #")...)
	ids = append(ids,
		def("7040", cat(n(1), x(3)), "UIC+EXT"),
		def("710", xv(20), "NHRN PZN"),
		def("711", xv(20), "NHRN CIP"),
		def("712", xv(20), "NHRN CN"),
		def("713", xv(20), "NHRN DRN"),
		def("714", xv(20), "NHRN AIM"),
		def("715", xv(20), "NHRN NDC"),
	)
	ids = append(ids, sequence("723", cat(x(2), opt(ClassCSet82, 28)), "CERT #")...)
	ids = append(ids,
		def("7240", xv(20), "PROTOCOL"),
		def("8001", n(14), "DIMENSIONS"),
		def("8002", xv(20), "CMT No."),
		def("8003", cat(n(14), opt(ClassCSet82, 16)), "GRAI"),
		def("8004", xv(30), "GIAI"),
		def("8005", n(6), "PRICE PER UNIT"),
		def("8006", cat(n(14), n(2), n(2)), "ITIP"),
		def("8007", xv(34), "IBAN"),
		def("8008", cat(n(8), opt(ClassDigit, 4)), "PROD TIME"),
		def("8009", xv(50), "OPTSEN"),
		def("8010", field{fmt.Sprintf("(%s{1,30})", ClassCSet39), Variable}, "CPID"),
		def("8011", nv(12), "CPID SERIAL"),
		def("8012", xv(20), "VERSION"),
		def("8013", xv(25), "GMN"),
		def("8017", n(18), "GSRN - PROVIDER"),
		def("8018", n(18), "GSRN - RECIPIENT"),
		def("8019", nv(10), "SRIN"),
		def("8020", xv(25), "REF No."),
		def("8026", cat(n(14), n(2), n(2)), "ITIP CONTENT"),
		def("8100", n(6), "-"),
		def("8101", n(10), "-"),
		def("8102", n(2), "-"),
		def("8110", xv(70), "-"),
		def("8111", n(4), "POINTS"),
		def("8112", xv(70), "-"),
		def("8200", xv(70), "PRODUCT URL"),
		def("90", xv(30), "INTERNAL"),
	)
	for i := 91; i <= 99; i++ {
		ids = append(ids, def(fmt.Sprintf("%d", i), xv(90), "INTERNAL"))
	}

	return ids
}
