// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package fixturetree

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treedump"
)

// parseLiteral parses one property value literal. Supported forms:
//
//	null                          nil
//	true, false                   bool
//	42, -3.5, NaN                 int / float64
//	#AARRGGBB                     treedump.Color
//	10.5x40                       treedump.Size
//	range(0,5)                    treedump.TextRange
//	highlight(#FF00FF00, range(0,5), range(8,2))
//	                              treedump.HighlightedRanges
//	[1, 2, 3]                     []any of literals
//	"with spaces\nand escapes"    string
//	anything-else                 string
func parseLiteral(lit string) (any, error) {
	switch {
	case lit == "null":
		return nil, nil
	case lit == "true":
		return true, nil
	case lit == "false":
		return false, nil
	}
	if v, err := strconv.Atoi(lit); err == nil {
		return v, nil
	}
	if v, err := strconv.ParseFloat(lit, 64); err == nil {
		return v, nil
	}
	if c, ok := parseColor(lit); ok {
		return c, nil
	}
	if inner, ok := cutCall(lit, "range"); ok {
		return parseRange(inner)
	}
	if inner, ok := cutCall(lit, "highlight"); ok {
		return parseHighlight(inner)
	}
	if inner, ok := strings.CutPrefix(lit, "["); ok {
		inner, ok = strings.CutSuffix(inner, "]")
		if !ok {
			return nil, errors.Errorf("unterminated list %q", lit)
		}
		return parseList(inner)
	}
	if w, h, ok := strings.Cut(lit, "x"); ok {
		width, errW := strconv.ParseFloat(w, 64)
		height, errH := strconv.ParseFloat(h, 64)
		if errW == nil && errH == nil {
			return treedump.Size{Width: width, Height: height}, nil
		}
	}
	if strings.HasPrefix(lit, "\"") {
		return unquote(lit)
	}
	return lit, nil
}

// cutCall strips a `name(...)` wrapper, returning the inner text.
func cutCall(lit, name string) (string, bool) {
	inner, ok := strings.CutPrefix(lit, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(inner, ")")
}

// parseColor recognizes the strict #AARRGGBB form. Anything else beginning
// with '#' (such as synthetic name tags) falls through to a plain string.
func parseColor(lit string) (treedump.Color, bool) {
	if len(lit) != 9 || lit[0] != '#' {
		return treedump.Color{}, false
	}
	v, err := strconv.ParseUint(lit[1:], 16, 32)
	if err != nil {
		return treedump.Color{}, false
	}
	return treedump.Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

func parseRange(inner string) (treedump.TextRange, error) {
	s, l, ok := strings.Cut(inner, ",")
	if !ok {
		return treedump.TextRange{}, errors.Errorf("range %q must be range(start,length)", inner)
	}
	start, errS := strconv.Atoi(strings.TrimSpace(s))
	length, errL := strconv.Atoi(strings.TrimSpace(l))
	if errS != nil || errL != nil {
		return treedump.TextRange{}, errors.Errorf("range %q must be range(start,length)", inner)
	}
	return treedump.TextRange{StartIndex: start, Length: length}, nil
}

func parseHighlight(inner string) (treedump.HighlightedRanges, error) {
	var h treedump.HighlightedRanges
	for i, part := range splitTopLevel(inner, ',') {
		part = strings.TrimSpace(part)
		if i == 0 {
			background, err := parseLiteral(part)
			if err != nil {
				return h, err
			}
			h.Background = background
			continue
		}
		rangeInner, ok := cutCall(part, "range")
		if !ok {
			return h, errors.Errorf("highlight range %q must be range(start,length)", part)
		}
		r, err := parseRange(rangeInner)
		if err != nil {
			return h, err
		}
		h.Ranges = append(h.Ranges, r)
	}
	if h.Background == nil && len(h.Ranges) == 0 {
		return h, errors.Errorf("empty highlight")
	}
	return h, nil
}

func parseList(inner string) ([]any, error) {
	out := []any{}
	if strings.TrimSpace(inner) == "" {
		return out, nil
	}
	for _, part := range splitTopLevel(inner, ',') {
		v, err := parseLiteral(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// splitTopLevel splits on sep, ignoring separators nested inside brackets,
// parentheses, or quotes.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case inQuote:
			if c == '\\' {
				i++
			} else if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func unquote(lit string) (string, error) {
	inner, ok := strings.CutSuffix(strings.TrimPrefix(lit, "\""), "\"")
	if !ok || len(lit) < 2 {
		return "", errors.Errorf("unterminated string %q", lit)
	}
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(inner) {
			return "", errors.Errorf("trailing escape in %q", lit)
		}
		switch inner[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", errors.Errorf("unknown escape \\%c in %q", inner[i], lit)
		}
	}
	return b.String(), nil
}

func unquoteIfQuoted(s string) string {
	if strings.HasPrefix(s, "\"") {
		if u, err := unquote(s); err == nil {
			return u
		}
	}
	return s
}
