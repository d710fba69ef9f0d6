package rules

// Letter is one of the 26 lower-case Latin letters 'a'..'z'
type Letter byte

// Alphabet lists every letter in rule set order
var Alphabet = func() [26]Letter {
	var letters [26]Letter
	for i := range letters {
		letters[i] = Letter('a' + i)
	}
	return letters
}()

// ParseLetter converts a rune to a Letter.
// Only lower-case ASCII letters are accepted.
func ParseLetter(r rune) (Letter, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return Letter(r), true
}

// String returns the letter as a one-character string
func (l Letter) String() string {
	return string(rune(l))
}

// Upper returns the upper-case form used for display
func (l Letter) Upper() string {
	return string(rune(l) - 'a' + 'A')
}

// Rule is the permissibility rule attached to a letter.
// It is either Simple or Conditional.
type Rule interface {
	isRule()
}

// Simple unconditionally allows or forbids a letter anywhere in text
type Simple struct {
	Allowed bool
}

func (Simple) isRule() {}

// Conditional allows a letter only in some contexts.
// Matcher finds the disallowed contexts: every match is a violation.
type Conditional struct {
	Matcher     Matcher
	Description string // Where the letter is censored (e.g., `Censored in "brown"`)
	Result      string // Summary shown next to a violation
}

func (Conditional) isRule() {}

// Matcher counts disallowed contexts in normalized input
type Matcher interface {
	// Matches returns the number of non-overlapping matches, scanning left to right
	Matches(input string) int
}
