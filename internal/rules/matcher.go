package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SuccessorMatcher flags a letter whose next non-whitespace rune is a
// letter outside its allowed set, or which ends the input.
type SuccessorMatcher struct {
	letter  Letter
	allowed [26]bool
}

// NewSuccessorMatcher builds a matcher from a string of allowed successors
func NewSuccessorMatcher(letter Letter, allowed string) SuccessorMatcher {
	m := SuccessorMatcher{letter: letter}
	for _, r := range allowed {
		if l, ok := ParseLetter(r); ok {
			m.allowed[l-'a'] = true
		}
	}
	return m
}

// Letter returns the letter that triggers the matcher
func (m SuccessorMatcher) Letter() Letter {
	return m.letter
}

// Allows reports whether l may follow the trigger letter
func (m SuccessorMatcher) Allows(l Letter) bool {
	if l < 'a' || l > 'z' {
		return false
	}
	return m.allowed[l-'a']
}

// Matches scans input left to right. A violating match consumes the
// trigger letter, any whitespace and the offending successor, so "oo"
// counts once for 'o'.
func (m SuccessorMatcher) Matches(input string) int {
	count := 0
	pos := 0
	for {
		idx := strings.IndexByte(input[pos:], byte(m.letter))
		if idx == -1 {
			return count
		}
		start := pos + idx
		next, end, atEnd := skipSpace(input, start+1)
		switch {
		case atEnd:
			count++
			return count
		case m.disallows(next):
			count++
			pos = end
		default:
			pos = start + 1
		}
	}
}

// disallows reports whether r is a letter outside the allowed set.
// Non-letters never trigger a violation.
func (m SuccessorMatcher) disallows(r rune) bool {
	l, ok := ParseLetter(r)
	if !ok {
		return false
	}
	return !m.allowed[l-'a']
}

// skipSpace returns the first non-whitespace rune at or after pos and
// the offset just past it. atEnd is true when only whitespace remains.
func skipSpace(s string, pos int) (r rune, end int, atEnd bool) {
	for pos < len(s) {
		c, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(c) {
			return c, pos + size, false
		}
		pos += size
	}
	return 0, pos, true
}
