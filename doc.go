// Package hledgerweb is the core behind a browser (or terminal) front-end to
// a plain-text hledger journal. It deliberately reimplements none of hledger
// itself: parsing, querying and report computation stay inside the hledger
// executable, which this package drives as a child process and whose JSON it
// normalizes into a stable model.
//
// The core functionalities include:
//   - Quantity/Amount Model: a typed view of hledger's mantissa/places/float
//     quantity encoding, including the disambiguation needed for commodities
//     whose thousands separator collides with the decimal point.
//   - Report Parsers: converting the print, bal, is/bs and reg JSON shapes
//     into transactions, balance rows, compound reports and register rows.
//   - Ledger Mutator: appending new entries and splicing edited entries back
//     into the journal text using hledger's own source positions, without
//     invoking hledger for writes.
//   - Read-Through Cache: short-TTL caching of the unfiltered transaction and
//     account lists, invalidated on every mutation.
//
// This package serves as the foundational logic for the `hlw` command-line
// tool and for any UI layer consuming the Service interface.
package hledgerweb
