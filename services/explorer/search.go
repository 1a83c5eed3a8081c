package explorer

import "unicode/utf8"

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetBlock
	TargetTransaction
	TargetAddress
)

const (
	maxBlockHeightLen = 8
	txHashLen         = 64
	minAddressLen     = 26
	maxAddressLen     = 35
)

// ResolveSearch decides which detail page a free-text search term points at.
// Short numbers are block heights, 64 characters are a transaction hash whatever
// they contain, and 26 to 35 characters are taken as an address. Lengths count
// characters, and the term is classified exactly as it is redirected.
func ResolveSearch(term string) TargetKind {
	n := utf8.RuneCountInString(term)

	switch {
	case n == 0:
		return TargetNone
	case n <= maxBlockHeightLen && isDigits(term):
		return TargetBlock
	case n == txHashLen:
		return TargetTransaction
	case n >= minAddressLen && n <= maxAddressLen:
		return TargetAddress
	}
	return TargetNone
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
