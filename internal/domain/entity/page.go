package entity

// Page is a 1-based page window over a listing.
type Page struct {
	Number int
	Limit  int
}

// NewPage builds a page window. Numbers below 1 become 1, limits below 1 fall back
// to defaultLimit, and limits above maxLimit are clamped to maxLimit.
func NewPage(number, limit, defaultLimit, maxLimit int) Page {
	if number < 1 {
		number = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Page{Number: number, Limit: limit}
}

// Offset returns the number of records skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}
