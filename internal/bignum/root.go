package bignum

import "log/slog"

// rootSearchSteps bounds the binary search for one square-root limb.
const rootSearchSteps = 30

// RootAssign replaces x with the integer degree-th root of x, truncated
// toward zero. A degree below one or an even root of a negative value leaves x
// unchanged, logs a warning and reports success.
func (x *BigInt) RootAssign(degree int) error {
	if err := x.valid(); err != nil {
		return err
	}
	if degree < 1 {
		warn("root", "root degree must be positive, value left unchanged", slog.Int("degree", degree))
		return nil
	}
	if x.sign == 0 || degree == 1 {
		return nil
	}
	if degree%2 == 0 && x.sign < 0 {
		warn("root", "even root of a negative value, value left unchanged", slog.Int("degree", degree))
		return nil
	}

	if degree == 2 {
		x.set(x.sign, sqrtLimbs(x.mag()))
		return nil
	}
	r, err := nthRootLimbs(x.mag(), degree)
	if err != nil {
		return err
	}
	x.set(x.sign, r)
	return nil
}

// sqrtLimbs builds floor(sqrt(a)) one limb at a time from the top, picking the
// largest limb whose candidate square does not exceed a.
func sqrtLimbs(a []uint32) []uint32 {
	cand := make([]uint32, (len(a)+1)/2)
	for pos := len(cand) - 1; pos >= 0; pos-- {
		lo, hi := uint32(0), uint32(Base-1)
		for step := 0; step < rootSearchSteps && lo < hi; step++ {
			mid := lo + (hi-lo+1)/2
			if squareFits(cand, pos, mid, a) {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		cand[pos] = lo
	}
	return trimLimbs(cand)
}

// squareFits reports whether cand, with digit placed at pos, squares to at most
// a. cand itself is not modified.
func squareFits(cand []uint32, pos int, digit uint32, a []uint32) bool {
	probe := cloneLimbs(cand)
	probe[pos] = digit
	probe = trimLimbs(probe)
	sq, err := mulLimbs(probe, probe)
	if err != nil {
		return false
	}
	return cmpLimbs(sq, a) <= 0
}

// nthRootLimbs computes floor(a^(1/degree)) with integer Newton iteration
// seeded at one.
func nthRootLimbs(a []uint32, degree int) ([]uint32, error) {
	target := &BigInt{sign: 1, limbs: cloneLimbs(a)}
	deg, err := FromInt(degree)
	if err != nil {
		return nil, err
	}

	est := one()
	descending := false
	for {
		next, err := newtonStep(est, target, deg, degree)
		if err != nil {
			return nil, err
		}
		c := est.Cmp(next)
		// Integer iteration may bounce by one around the fixed point.
		if c == 0 || (c < 0 && descending) {
			break
		}
		descending = c > 0
		est = next
	}

	for {
		p, err := Pow(est, degree)
		if err != nil {
			return nil, err
		}
		if p.Cmp(target) <= 0 {
			break
		}
		if err := est.SubAssign(one()); err != nil {
			return nil, err
		}
	}
	return est.limbs, nil
}

// newtonStep returns est - floor((est^d - target) / (d * est^(d-1))).
func newtonStep(est, target, deg *BigInt, degree int) (*BigInt, error) {
	num, err := Pow(est, degree)
	if err != nil {
		return nil, err
	}
	if err := num.SubAssign(target); err != nil {
		return nil, err
	}
	den, err := Pow(est, degree-1)
	if err != nil {
		return nil, err
	}
	if err := den.MulAssign(deg); err != nil {
		return nil, err
	}
	if err := num.DivAssign(den); err != nil {
		return nil, err
	}
	next := est.Clone()
	if err := next.SubAssign(num); err != nil {
		return nil, err
	}
	return next, nil
}
