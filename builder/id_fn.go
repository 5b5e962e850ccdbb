// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// id_fn.go: vertex ID schemes.
//
// An IDFn must be pure and injective over the indices a constructor uses;
// out-of-range indices panic since they signal a programming error.

package builder

import (
	"fmt"
	"strconv"
)

const alphabetSize = 26

// IDFn maps a zero-based vertex index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: 0 → "0", 12 → "12".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns a single capital letter for idx in [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= alphabetSize {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns spreadsheet column names: 0 → "A", 26 → "AA".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/alphabetSize - 1 {
		runes = append(runes, rune('A'+i%alphabetSize))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// AlphanumericIDFn returns base-36 IDs: 35 → "z", 36 → "10".
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn returns lowercase hexadecimal IDs.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix followed by the decimal index, e.g. "v7".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultIDs resets the scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithAlphanumericIDs selects AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }

// WithHexIDs selects HexIDFn.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
