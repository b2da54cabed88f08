package nfield

import "math/big"

// Elem is a field element represented by its power-basis coordinates:
// coordinate i is the coefficient of a^i.
//
// Elems are plain values; arithmetic lives on the Field that produced them,
// and a fresh Elem is returned from every operation. Passing an Elem to a
// Field of a different degree is a programming error and panics on the
// resulting index mismatch.
type Elem struct {
	c []*big.Rat
}

// Zero returns the additive identity.
func (f *Field) Zero() Elem {
	c := make([]*big.Rat, f.deg)
	for i := range c {
		c[i] = new(big.Rat)
	}
	return Elem{c: c}
}

// One returns the multiplicative identity.
func (f *Field) One() Elem {
	return f.Scalar(new(big.Rat).SetInt64(1))
}

// Scalar embeds a rational number into the field.
func (f *Field) Scalar(r *big.Rat) Elem {
	e := f.Zero()
	e.c[0].Set(r)
	return e
}

// Gen returns the field generator a. For a degree-1 field, a is the
// rational root -f(0) itself.
func (f *Field) Gen() Elem {
	e := f.Zero()
	if f.deg == 1 {
		e.c[0].SetInt(new(big.Int).Neg(f.mod[0]))
		return e
	}
	e.c[1].SetInt64(1)
	return e
}

// Coords returns a copy of the power-basis coordinates of e.
func (e Elem) Coords() []*big.Rat {
	out := make([]*big.Rat, len(e.c))
	for i, r := range e.c {
		out[i] = new(big.Rat).Set(r)
	}
	return out
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool {
	for _, r := range e.c {
		if r.Sign() != 0 {
			return false
		}
	}
	return true
}

// IsIntegral reports whether every power-basis coordinate of e is a
// rational integer, i.e. whether e lies in Z[a].
func (e Elem) IsIntegral() bool {
	for _, r := range e.c {
		if !r.IsInt() {
			return false
		}
	}
	return true
}

// Equal reports whether x and y have identical coordinates.
func (f *Field) Equal(x, y Elem) bool {
	for i := range x.c {
		if x.c[i].Cmp(y.c[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns x + y.
func (f *Field) Add(x, y Elem) Elem {
	z := f.Zero()
	for i := range z.c {
		z.c[i].Add(x.c[i], y.c[i])
	}
	return z
}

// Sub returns x - y.
func (f *Field) Sub(x, y Elem) Elem {
	z := f.Zero()
	for i := range z.c {
		z.c[i].Sub(x.c[i], y.c[i])
	}
	return z
}

// Neg returns -x.
func (f *Field) Neg(x Elem) Elem {
	z := f.Zero()
	for i := range z.c {
		z.c[i].Neg(x.c[i])
	}
	return z
}

// ScaleRat returns r·x for a rational scalar r.
func (f *Field) ScaleRat(x Elem, r *big.Rat) Elem {
	z := f.Zero()
	for i := range z.c {
		z.c[i].Mul(x.c[i], r)
	}
	return z
}

// Mul returns x·y, reduced modulo the defining polynomial.
func (f *Field) Mul(x, y Elem) Elem {
	prod := make([]*big.Rat, 2*f.deg-1)
	for i := range prod {
		prod[i] = new(big.Rat)
	}
	t := new(big.Rat)
	for i, xi := range x.c {
		if xi.Sign() == 0 {
			continue
		}
		for j, yj := range y.c {
			if yj.Sign() == 0 {
				continue
			}
			t.Mul(xi, yj)
			prod[i+j].Add(prod[i+j], t)
		}
	}
	f.reduce(prod)
	z := f.Zero()
	for i := range z.c {
		z.c[i].Set(prod[i])
	}
	return z
}

// MulGen returns a·x, the cheap special case used when walking an ideal's
// generator through the power basis.
func (f *Field) MulGen(x Elem) Elem {
	shifted := make([]*big.Rat, f.deg+1)
	shifted[0] = new(big.Rat)
	for i, xi := range x.c {
		shifted[i+1] = new(big.Rat).Set(xi)
	}
	f.reduce(shifted)
	z := f.Zero()
	for i := range z.c {
		z.c[i].Set(shifted[i])
	}
	return z
}

// EvalRatPoly evaluates the polynomial with the given rational coefficients
// (constant term first) at the element x, by Horner's rule.
func (f *Field) EvalRatPoly(coeffs []*big.Rat, x Elem) Elem {
	res := f.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		res = f.Add(f.Mul(res, x), f.Scalar(coeffs[i]))
	}
	return res
}

// reduce folds coefficients of a^i for i >= deg back into the power basis
// using a^deg = -(mod[0] + mod[1]·a + ... + mod[deg-1]·a^(deg-1)).
func (f *Field) reduce(p []*big.Rat) {
	t := new(big.Rat)
	mc := new(big.Rat)
	for i := len(p) - 1; i >= f.deg; i-- {
		if p[i].Sign() == 0 {
			continue
		}
		for j := 0; j < f.deg; j++ {
			if f.mod[j].Sign() == 0 {
				continue
			}
			mc.SetInt(f.mod[j])
			t.Mul(p[i], mc)
			p[i-f.deg+j].Sub(p[i-f.deg+j], t)
		}
		p[i].SetInt64(0)
	}
}
