package pqb

// Keyword is a bare SQL keyword usable in expression position.
type Keyword int

const (
	KeywordNull Keyword = iota
	KeywordCurrentTimestamp
)

func (k Keyword) text() string {
	switch k {
	case KeywordCurrentTimestamp:
		return "CURRENT_TIMESTAMP"
	default:
		return "NULL"
	}
}
