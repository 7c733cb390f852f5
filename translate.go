// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treedump

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// valueTranslator maps an arbitrary, possibly-nil property value to a
// canonical string for one output format. Translation must be deterministic
// for the same logical value; the rendered strings are what snapshot
// comparison sees.
type valueTranslator interface {
	translate(v any) string
}

// textTranslator renders values for PlainText output.
type textTranslator struct{}

func (t textTranslator) translate(v any) string {
	if isNilValue(v) {
		return "[NULL]"
	}
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case Color:
		return val.String()
	case Size:
		return formatSize(val)
	case string:
		return val
	}
	if s, ok := formatNumber(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

// jsonTranslator renders values for Structured output. Every returned
// string is a complete JSON value token.
type jsonTranslator struct{}

func (t jsonTranslator) translate(v any) string {
	if isNilValue(v) {
		return "null"
	}
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case Color:
		return `"` + val.String() + `"`
	case Size:
		return formatSize(val)
	case HighlightedRanges:
		parts := make([]string, len(val.Ranges))
		for i, r := range val.Ranges {
			parts[i] = t.translate(r)
		}
		return fmt.Sprintf(`{"Background": %s, "Ranges": [%s]}`,
			t.translate(val.Background), strings.Join(parts, ", "))
	case TextRange:
		return fmt.Sprintf(`{"StartIndex": %d, "Length": %d}`, val.StartIndex, val.Length)
	case string:
		return quoteJSON(val)
	}
	if s, ok := formatNumber(v); ok {
		return s
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = t.translate(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return quoteJSON(fmt.Sprint(v))
}

// isNilValue reports whether v is nil, including a typed nil pointer boxed
// in the interface. Nil slices and maps are not "null": they render as
// empty collections.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return true
	}
	return false
}

// formatNumber stringifies primitive numeric values. NaN renders as "NaN"
// and is subsequently filtered out by the value gate.
func formatNumber(v any) (string, bool) {
	switch val := v.(type) {
	case int:
		return strconv.Itoa(val), true
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val), true
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), true
	}
	return "", false
}

// formatSize renders a Size as "[w, h]" with the components truncated to
// integers. Fractional extents are render- and platform-dependent; only the
// integer parts are stable enough to compare.
func formatSize(s Size) string {
	return "[" + strconv.Itoa(int(s.Width)) + ", " + strconv.Itoa(int(s.Height)) + "]"
}

// quoteJSON returns s as a quoted JSON string literal with the snapshot
// escaping rules: tabs become spaces, newlines become the two-character
// escape \n, carriage returns and other control characters are dropped,
// code points beyond the basic multilingual plane (surrogate pairs in
// UTF-16 hosts, e.g. emoji) are stripped entirely, and quotes and
// backslashes are escaped.
func quoteJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteByte(' ')
		case r == '\n':
			b.WriteString(`\n`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r < 0x20 || r > 0xFFFF:
			// Dropped.
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
