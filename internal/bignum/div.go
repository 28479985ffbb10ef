package bignum

// quotientSearchSteps bounds the binary search for one quotient limb:
// ceil(log2(Base)) halvings shrink [0, Base) to a single candidate.
const quotientSearchSteps = 30

// DivAssign sets x to the floor of x / y. When y is zero it reports
// ErrDivByZero and leaves both operands unchanged.
func (x *BigInt) DivAssign(y *BigInt) error {
	if err := check(x, y); err != nil {
		return err
	}
	if y.sign == 0 {
		return ErrDivByZero
	}
	if x.sign == 0 {
		return nil
	}
	q, r := divLimbs(x.mag(), y.mag())
	sign := x.sign * y.sign
	if sign < 0 && !isZeroLimbs(r) {
		// Round toward negative infinity so the remainder takes the divisor's sign.
		var err error
		q, err = addLimbs(q, []uint32{1})
		if err != nil {
			return err
		}
	}
	x.set(sign, q)
	return nil
}

// ModAssign sets x = x - floor(x/y)*y. The result has the sign of y.
func (x *BigInt) ModAssign(y *BigInt) error {
	if err := check(x, y); err != nil {
		return err
	}
	if y.sign == 0 {
		return ErrDivByZero
	}
	if x.sign == 0 {
		return nil
	}
	q := x.Clone()
	if err := q.DivAssign(y); err != nil {
		return err
	}
	if err := q.MulAssign(y); err != nil {
		return err
	}
	return x.SubAssign(q)
}

// QuoRem returns the floor quotient and the matching remainder of a / b.
func QuoRem(a, b *BigInt) (q, r *BigInt, err error) {
	if err := check(a, b); err != nil {
		return nil, nil, err
	}
	q = a.Clone()
	if err := q.DivAssign(b); err != nil {
		return nil, nil, err
	}
	prod := q.Clone()
	if err := prod.MulAssign(b); err != nil {
		return nil, nil, err
	}
	r = a.Clone()
	if err := r.SubAssign(prod); err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// divLimbs performs long division of magnitudes a / d, d != 0, one base-10^9
// limb at a time.
func divLimbs(a, d []uint32) (q, r []uint32) {
	q = make([]uint32, len(a))
	r = []uint32{0}
	for i := len(a) - 1; i >= 0; i-- {
		r = shiftInLimb(r, a[i])
		var digit uint32
		if cmpLimbs(r, d) >= 0 {
			digit = quotientDigit(r, d)
			r = subLimbs(r, mulSmall(d, digit))
		}
		q[i] = digit
	}
	return trimLimbs(q), r
}

// quotientDigit returns the largest q in [0, Base) with q*d <= r. It requires
// r < d*Base. Each probe builds a fresh product.
func quotientDigit(r, d []uint32) uint32 {
	lo, hi := uint32(0), uint32(Base-1)
	for step := 0; step < quotientSearchSteps && lo < hi; step++ {
		mid := lo + (hi-lo+1)/2
		if cmpLimbs(mulSmall(d, mid), r) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// shiftInLimb returns r*Base + limb in fresh storage.
func shiftInLimb(r []uint32, limb uint32) []uint32 {
	if isZeroLimbs(r) {
		return []uint32{limb}
	}
	out := make([]uint32, len(r)+1)
	out[0] = limb
	copy(out[1:], r)
	return out
}
