package arr

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one dotted component of a path: a key optionally followed by
// one or more bracketed indexes.
//
//	"items[0][-1]" → Segment{Key: "items", Indexes: []int{0, -1}}
type Segment struct {
	Key     string
	Indexes []int
}

// String renders the segment back into path syntax.
func (s Segment) String() string {
	var b strings.Builder
	b.WriteString(s.Key)
	for _, i := range s.Indexes {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}
	return b.String()
}

// ParsePath splits a dot-notation path with optional [i] indexes into its
// segments. Every segment must start with a non-empty key.
//
//	ParsePath("user.tags[-1]")
//	// → [{user []} {tags [-1]}]
//
// Returns [ErrInvalidPath] for an empty path, an empty key, an unterminated
// bracket or a non-integer index.
func ParsePath(path string) ([]Segment, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	parts := strings.Split(path, ".")
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, path)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func parseSegment(part string) (Segment, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if part == "" || strings.IndexByte(part, ']') >= 0 {
			return Segment{}, ErrInvalidPath
		}
		return Segment{Key: part}, nil
	}
	if open == 0 {
		return Segment{}, ErrInvalidPath
	}
	seg := Segment{Key: part[:open]}
	if strings.IndexByte(seg.Key, ']') >= 0 {
		return Segment{}, ErrInvalidPath
	}
	rest := part[open:]
	for rest != "" {
		if rest[0] != '[' {
			return Segment{}, ErrInvalidPath
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Segment{}, ErrInvalidPath
		}
		idx, err := parseIndex(rest[1:end])
		if err != nil {
			return Segment{}, err
		}
		seg.Indexes = append(seg.Indexes, idx)
		rest = rest[end+1:]
	}
	return seg, nil
}

// parseIndex accepts '-'? digits. Leading '+' and whitespace are rejected.
func parseIndex(s string) (int, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, ErrInvalidPath
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, ErrInvalidPath
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidPath
	}
	return n, nil
}

// ResolveIndex maps a possibly negative index onto [0, length). Negative
// values count from the end, so -1 is the last element. The second result
// is false when the index falls outside the sequence.
func ResolveIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}
