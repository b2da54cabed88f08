// Package ideals_test exercises the labeling core two ways: against a stub
// collaborator, which isolates the codec/labeling logic from any real
// arithmetic, and against the nfield package for end-to-end behavior in a
// real quadratic field.
package ideals_test

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/arithlab/hmfield/ideals"
	"github.com/arithlab/hmfield/nfield"
)

// The arithmetic layer must satisfy the collaborator contract.
var _ ideals.Field[*nfield.Ideal] = (*nfield.Field)(nil)
var _ ideals.Automorphism[*nfield.Ideal] = (*nfield.Automorphism)(nil)

var errStubParse = errors.New("stub: unparsable element")

// stubIdeal is a synthetic ideal whose invariants are chosen by the stub
// field, not computed.
type stubIdeal struct {
	norm  *big.Int
	least *big.Int
	key   string
}

func (s stubIdeal) Norm() *big.Int         { return s.norm }
func (s stubIdeal) LeastInteger() *big.Int { return s.least }
func (s stubIdeal) CanonicalKey() string   { return s.key }

// stubField fabricates ideals whose norm and least integer both equal the
// integer generator n, with a key derived from the generating pair. Any
// encoding "[n,n,alpha]" therefore passes the integrity check, which lets
// the tests drive the labeler with inputs no real field could produce.
type stubField struct{}

func (stubField) Element(s string) (ideals.Element, error) {
	if strings.Contains(s, "!") {
		return nil, errStubParse
	}
	return s, nil
}

func (stubField) Ideal(n *big.Int, gen ideals.Element) (stubIdeal, error) {
	return stubIdeal{
		norm:  n,
		least: n,
		key:   fmt.Sprintf("%s|%s", n, gen),
	}, nil
}
