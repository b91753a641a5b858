package domain

// MatchKind identifies which tier of the keyword cascade produced a match.
type MatchKind string

const (
	MatchNone    MatchKind = "NONE"
	MatchExact   MatchKind = "EXACT"
	MatchFuzzy   MatchKind = "FUZZY"
	MatchPartial MatchKind = "PARTIAL"
)

// MatchResult is the outcome of one keyword lookup.
// Score is only meaningful for fuzzy matches and is always in [0,1].
type MatchResult struct {
	Kind   MatchKind `json:"kind"`
	Phrase string    `json:"phrase,omitempty"`
	Score  float64   `json:"score,omitempty"`
}

// KeywordEntry maps a canonical phrase to its canned response.
type KeywordEntry struct {
	Phrase   string
	Response string
}

// KeywordTable is an ordered phrase-to-response mapping. Position in the
// table breaks ties: partial matching and fuzzy tie-breaking both scan in
// authored order, first entry wins.
type KeywordTable []KeywordEntry

// Response returns the response text for a phrase.
func (t KeywordTable) Response(phrase string) (string, bool) {
	for _, entry := range t {
		if entry.Phrase == phrase {
			return entry.Response, true
		}
	}
	return "", false
}

// GenericEntry maps a trigger word to a canned response. Generic entries are
// only consulted when the keyword cascade yields no match.
type GenericEntry struct {
	Trigger  string
	Response string
}

// GenericTable is an ordered trigger-to-response mapping, scanned in authored
// order.
type GenericTable []GenericEntry
