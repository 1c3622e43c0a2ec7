// SPDX-License-Identifier: MIT

package equation

// linear is Σ coef[v]·v + konst.
type linear struct {
	coef  map[string]float64
	konst float64
}

func constant(v float64) linear { return linear{konst: v} }

func variable(name string) linear {
	return linear{coef: map[string]float64{name: 1}}
}

func (l linear) isConstant() bool {
	for _, c := range l.coef {
		if c != 0 {
			return false
		}
	}

	return true
}

// combine returns l + s·r.
func (l linear) combine(r linear, s float64) linear {
	out := linear{coef: make(map[string]float64, len(l.coef)+len(r.coef)), konst: l.konst + s*r.konst}
	for v, c := range l.coef {
		out.coef[v] += c
	}
	for v, c := range r.coef {
		out.coef[v] += s * c
	}

	return out
}

func (l linear) scale(s float64) linear {
	return linear{}.combine(l, s)
}

// mul multiplies two forms; at least one must be constant.
func mul(l, r linear) (linear, error) {
	switch {
	case r.isConstant():
		return l.scale(r.konst), nil
	case l.isConstant():
		return r.scale(l.konst), nil
	default:
		return linear{}, ErrNonLinear
	}
}

// div divides by a constant form.
func div(l, r linear) (linear, error) {
	if !r.isConstant() {
		return linear{}, ErrNonLinear
	}
	if r.konst == 0 {
		return linear{}, ErrDivisionByZero
	}

	return l.scale(1 / r.konst), nil
}
