// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package fixturetree parses a textual, indentation-defined description of
// a node tree into treedump.Node implementations. It exists for tests and
// for the treedump CLI; production trees come from the host environment.
package fixturetree

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse a multi-line input string into trees of nodes. Hierarchy is defined
// by indentation, like:
//
//	Window Width=800
//	 StackPanel
//	  Button @ok Text=OK
//	  Button @cancel Text=Cancel
//
// Each line describes one node: a type name, an optional @automationID, and
// zero or more key=value properties (see parseLiteral for the value
// syntax). A more-indented line starting with '.' is a continuation line:
// its key=value pairs attach to the enclosing node instead of introducing a
// child, which keeps long property lists readable:
//
//	Window Width=800.0
//	 .Height=600.0 Name=main
//	 Button @ok Text=OK
//
// The indentation level is arbitrary but must be consistent across
// nodes, tabs are rejected, and indentation levels cannot be skipped — the
// same rules the input would need to round-trip through a dump.
func Parse(input string) ([]*Node, error) {
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil, errors.Errorf("empty input")
	}
	lines := strings.Split(input, "\n")
	indentLevel := make([]int, len(lines))
	for i, line := range lines {
		level := 0
		for strings.HasPrefix(line[level:], " ") {
			level++
		}
		if len(line) == level {
			return nil, errors.Errorf("empty line in input:\n%s", input)
		}
		if line[level] == '\t' {
			return nil, errors.Errorf("tab indentation in input:\n%s", input)
		}
		indentLevel[i] = level
	}
	levels := slices.Clone(indentLevel)
	slices.Sort(levels)
	levels = slices.Compact(levels)

	var parse func(levelIdx, startLineIdx, endLineIdx int, parent *Node) ([]*Node, error)
	parse = func(levelIdx, startLineIdx, endLineIdx int, parent *Node) ([]*Node, error) {
		if startLineIdx > endLineIdx {
			return nil, nil
		}
		level := levels[levelIdx]
		if indentLevel[startLineIdx] != level {
			return nil, errors.Errorf("inconsistent indentation in input:\n%s", input)
		}
		nextNode := startLineIdx + 1
		for ; nextNode <= endLineIdx; nextNode++ {
			if indentLevel[nextNode] <= level {
				break
			}
		}
		line := lines[startLineIdx][level:]
		if strings.HasPrefix(line, ".") {
			// Continuation line: its properties attach to the enclosing
			// node.
			if parent == nil {
				return nil, errors.Errorf("property line %q without an enclosing node", line)
			}
			if nextNode != startLineIdx+1 {
				return nil, errors.Errorf("property line %q cannot have children", line)
			}
			if err := parsePropertyLine(line, parent); err != nil {
				return nil, err
			}
			return parse(levelIdx, nextNode, endLineIdx, parent)
		}
		node, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		node.children, err = parse(levelIdx+1, startLineIdx+1, nextNode-1, node)
		if err != nil {
			return nil, err
		}
		otherNodes, err := parse(levelIdx, nextNode, endLineIdx, parent)
		if err != nil {
			return nil, err
		}
		return append([]*Node{node}, otherNodes...), nil
	}
	return parse(0, 0, len(lines)-1, nil)
}

// ParseOne parses an input that must describe exactly one root node.
func ParseOne(input string) (*Node, error) {
	roots, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, errors.Errorf("expected a single root node, found %d", len(roots))
	}
	return roots[0], nil
}

// parseLine parses one node description:
//
//	TypeName [@automationID] [key=value ...]
func parseLine(line string) (*Node, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	n := &Node{typeName: tokens[0]}
	for _, tok := range tokens[1:] {
		if rest, ok := strings.CutPrefix(tok, "@"); ok {
			if n.automationID != "" {
				return nil, errors.Errorf("duplicate automation id in %q", line)
			}
			n.automationID = rest
			continue
		}
		p, err := parseProperty(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", line)
		}
		n.properties = append(n.properties, p)
	}
	return n, nil
}

// parsePropertyLine parses a '.key=value [key=value ...]' continuation line
// and appends its properties to n.
func parsePropertyLine(line string, n *Node) error {
	tokens, err := tokenize(strings.TrimPrefix(line, "."))
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		p, err := parseProperty(tok)
		if err != nil {
			return errors.Wrapf(err, "in %q", line)
		}
		n.properties = append(n.properties, p)
	}
	return nil
}

// parseProperty parses a single key=value token. A '!err:' value marks the
// property as unreadable.
func parseProperty(tok string) (property, error) {
	key, lit, ok := strings.Cut(tok, "=")
	if !ok || key == "" {
		return property{}, errors.Errorf("cannot parse %q", tok)
	}
	p := property{name: key}
	if msg, isErr := strings.CutPrefix(lit, "!err:"); isErr {
		p.err = errors.New(unquoteIfQuoted(msg))
		return p, nil
	}
	var err error
	p.value, err = parseLiteral(lit)
	return p, err
}

// tokenize splits a node line on spaces, keeping quoted strings and
// bracketed or parenthesized literals (which may contain spaces) intact.
func tokenize(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	depth := 0
	inQuote := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case inQuote:
			cur.WriteByte(c)
			if c == '\\' && i+1 < len(line) {
				i++
				cur.WriteByte(line[i])
			} else if c == '"' {
				inQuote = false
			}
		case c == '"':
			cur.WriteByte(c)
			inQuote = true
		case c == '[' || c == '(':
			depth++
			cur.WriteByte(c)
		case c == ']' || c == ')':
			depth--
			cur.WriteByte(c)
		case c == ' ' && depth == 0:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	if inQuote {
		return nil, errors.Errorf("unterminated string in %q", line)
	}
	if depth != 0 {
		return nil, errors.Errorf("unbalanced brackets in %q", line)
	}
	flush()
	if len(tokens) == 0 {
		return nil, errors.Errorf("empty node line")
	}
	return tokens, nil
}
