package rules

// Descriptions for the conditional letters of the default table
const (
	EDescription = `Censored in "The quick", but not in "The lazy"`
	EResult      = "Allowed before voiced consonant letters"
	ODescription = `Censored in "brown", but not in "fox" and "over"`
	OResult      = "Allowed before non-semivowel consonants"
)

// Allowed successor letters for the conditional rules
const (
	eSuccessors = "bdghjlmnrvwz"
	oSuccessors = "bcdfghklmnpqrstvxyz"
)

// Default returns the fixed rule table, derived from the pangram
//
//	Th* *uic* *r*wn *ox *umps ov*r the la*y **g
//	A * C * E * G H I * * L M N O P * R S T U V W X Y *
func Default() RuleSet {
	table := make(map[Letter]Rule, len(Alphabet))
	for _, l := range "acghilmnprstuvwxy" {
		table[Letter(l)] = Simple{Allowed: true}
	}
	for _, l := range "bdfjkqz" {
		table[Letter(l)] = Simple{Allowed: false}
	}
	table['e'] = Conditional{
		Matcher:     NewSuccessorMatcher('e', eSuccessors),
		Description: EDescription,
		Result:      EResult,
	}
	table['o'] = Conditional{
		Matcher:     NewSuccessorMatcher('o', oSuccessors),
		Description: ODescription,
		Result:      OResult,
	}

	rs, err := New(table)
	if err != nil {
		// The table above covers every letter
		panic(err)
	}
	return rs
}
