/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1code decodes GS1 element strings, as read by barcode scanners
// from GS1-128, GS1 DataBar, GS1 DataMatrix, GS1 QR Code and GS1 DotCode
// symbols, into their Application Identifier (AI) prefixed elements.
//
// The relevant rules are in the GS1 General Specifications, section 7.8:
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
//
// An element string is a concatenation of elements, each of which is an AI
// followed by its data. Elements aren't self describing: the AI determines how
// long its data is, and the only thing that tells where one element ends and
// the next starts is the AI table. Elements whose first two digits have a
// predefined length (such as (01), the GTIN) simply run for that many
// characters; every other element ends with a group separator (ASCII 29, the
// transmitted form of FNC1) or at the end of the data.
//
// A scanner may also prepend a symbology identifier such as "]C1" to tell
// which symbology it read; Decode strips it before reading elements.
//
// Scans are frequently damaged, truncated, or not GS1 data at all, and the
// callers of this package are better served by whatever could be recovered
// than by an error. Decode therefore never fails: anything it can't read as
// an element is kept as a skipped Fragment, and reading continues with the
// next element. Whether the result holds the elements a caller needs is for
// that caller to decide.
//
// The AI table itself lives in package ai. Its Default registry carries the
// AIs of the General Specifications; other tables can be built in code or
// loaded from YAML.
package gs1code
