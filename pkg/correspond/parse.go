package correspond

import "strconv"

// ParsesToInt creates a Correspondence between a string and an
// int that considers them to correspond if the string parses, in
// base 10, to exactly the expected integer.
//
// Compare never fails: input that does not parse as an integer
// simply does not correspond, rather than being rejected with an
// error.
func ParsesToInt() Correspondence[string, int] {
	return parsesToIntCorrespondence{}
}

type parsesToIntCorrespondence struct {
	Unsupported
}

// Compare reports whether actual parses to expected.
func (parsesToIntCorrespondence) Compare(
	actual string,
	expected int,
) bool {
	n, err := strconv.Atoi(actual)
	if err != nil {
		return false
	}
	return n == expected
}

// Describe returns "parses to".
func (parsesToIntCorrespondence) Describe() string {
	return "parses to"
}
