package nfield

import (
	"errors"
	"math/big"
)

// ErrNotRoot indicates an automorphism image that is not a root of the
// field's defining polynomial.
var ErrNotRoot = errors.New("nfield: image is not a root of the defining polynomial")

// Automorphism is a field automorphism of K over Q, determined by the image
// of the generator. Applying it to an element substitutes that image for
// the generator; applying it to an ideal maps the ideal's generating pair.
//
// An Automorphism is immutable after construction and safe for concurrent
// use.
type Automorphism struct {
	f   *Field
	img Elem
}

// NewAutomorphism constructs the automorphism sending the field generator
// to img. Returns ErrNotRoot unless img is a root of the defining
// polynomial, and ErrWrongField for an element of the wrong degree.
func NewAutomorphism(f *Field, img Elem) (*Automorphism, error) {
	if len(img.c) != f.deg {
		return nil, ErrWrongField
	}
	coeffs := make([]*big.Rat, len(f.mod))
	for i, c := range f.mod {
		coeffs[i] = new(big.Rat).SetInt(c)
	}
	if !f.EvalRatPoly(coeffs, img).IsZero() {
		return nil, ErrNotRoot
	}
	return &Automorphism{f: f, img: img}, nil
}

// Identity returns the identity automorphism of f.
func Identity(f *Field) *Automorphism {
	return &Automorphism{f: f, img: f.Gen()}
}

// Apply returns the image of the element e under the automorphism.
func (a *Automorphism) Apply(e Elem) Elem {
	return a.f.EvalRatPoly(e.Coords(), a.img)
}

// Image returns the image of the ideal: the ideal generated by the same
// rational integer and the image of the second generator. Automorphisms
// permute the ideals of the field, preserving norms; the image's canonical
// form is recomputed from scratch.
func (a *Automorphism) Image(idl *Ideal) (*Ideal, error) {
	if idl == nil || idl.f != a.f {
		return nil, ErrWrongField
	}
	return a.f.idealOf(idl.n, a.Apply(idl.gen))
}
