package names

import "strings"

// Name format rules for the market. Names are hierarchical identifiers in
// the ledger's account alphabet: lowercase letters, digits 1-5 and dots,
// where everything after the last dot is the suffix namespace.
//
// Names of the maximal length are excluded from the marketplace by
// convention: they are freely creatable by anyone, so there is nothing
// scarce to auction.
const MaxLen = 13

const alphabet = "abcdefghijklmnopqrstuvwxyz12345"

// IsValid reports whether name is a well-formed hierarchical name.
func IsValid(name string) bool {
	if name == "" || len(name) > MaxLen {
		return false
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
		return false
	}
	for _, r := range name {
		if r != '.' && !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}

// IsMaxLengthLeaf reports whether name has the maximal length, which takes
// it off the market.
func IsMaxLengthLeaf(name string) bool {
	return len(name) == MaxLen
}

// Suffix returns the immediate parent namespace of name: the part after the
// last dot. A name without a dot is its own suffix.
func Suffix(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
