package tmpl

import (
	"fmt"
	"strings"
)

// Call is one formatter invocation in a placeholder's chain.
type Call struct {
	Name string
	Args []string
}

// Placeholder describes the body of a {...} region:
//
//	path (':' formatter)* ('|' default)?
//	formatter := name ('(' arg (',' arg)* ')')?
type Placeholder struct {
	Raw        string
	Path       string
	Formatters []Call
	Default    string
	HasDefault bool
}

// Parse splits a placeholder body (the text between the braces) into its
// path, formatter chain and default. The '|' and ':' separators only count
// outside parentheses, so "pad(4,:)" is a single formatter.
//
// When the chain is malformed Parse returns ErrInvalidFormatter together
// with a Placeholder whose Path and Default are still filled in and whose
// Formatters are empty.
func Parse(body string) (Placeholder, error) {
	ph := Placeholder{Raw: "{" + body + "}"}
	head := body
	if i := indexTopLevel(body, '|'); i >= 0 {
		head, ph.Default, ph.HasDefault = body[:i], body[i+1:], true
	}
	parts := splitTopLevel(head, ':')
	ph.Path = strings.TrimSpace(parts[0])
	calls, err := parseChain(parts[1:])
	if err != nil {
		return ph, fmt.Errorf("%w: %s", err, ph.Raw)
	}
	ph.Formatters = calls
	return ph, nil
}

// ParseChain parses a standalone formatter chain such as "trim:pad(3, )".
func ParseChain(chain string) ([]Call, error) {
	return parseChain(splitTopLevel(chain, ':'))
}

func parseChain(parts []string) ([]Call, error) {
	var calls []Call
	for _, src := range parts {
		call, err := parseCall(strings.TrimSpace(src))
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
	return calls, nil
}

func parseCall(src string) (Call, error) {
	open := strings.IndexByte(src, '(')
	if open < 0 {
		if !validName(src) || strings.IndexByte(src, ')') >= 0 {
			return Call{}, fmt.Errorf("%w: %q", ErrInvalidFormatter, src)
		}
		return Call{Name: src}, nil
	}
	name := strings.TrimSpace(src[:open])
	if !validName(name) || !strings.HasSuffix(src, ")") {
		return Call{}, fmt.Errorf("%w: %q", ErrInvalidFormatter, src)
	}
	inner := src[open+1 : len(src)-1]
	if depth(inner) != 0 {
		return Call{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidFormatter, src)
	}
	call := Call{Name: name}
	if strings.TrimSpace(inner) != "" {
		for _, arg := range splitTopLevel(inner, ',') {
			call.Args = append(call.Args, strings.TrimSpace(arg))
		}
	}
	return call, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || r == '.' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return true
}

// depth returns the final parenthesis depth of s, or -1 as soon as a ')'
// has no partner.
func depth(s string) int {
	d := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			d++
		case ')':
			if d--; d < 0 {
				return -1
			}
		}
	}
	return d
}

func indexTopLevel(s string, sep byte) int {
	d := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			d++
		case ')':
			d--
		case sep:
			if d <= 0 {
				return i
			}
		}
	}
	return -1
}

func splitTopLevel(s string, sep byte) []string {
	var parts []string
	for {
		i := indexTopLevel(s, sep)
		if i < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:i])
		s = s[i+1:]
	}
}
