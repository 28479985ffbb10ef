package bignum

// MulAssign sets x = x * y.
func (x *BigInt) MulAssign(y *BigInt) error {
	if err := check(x, y); err != nil {
		return err
	}
	if x.sign == 0 || y.sign == 0 {
		x.set(0, nil)
		return nil
	}
	prod, err := mulLimbs(x.mag(), y.mag())
	if err != nil {
		return err
	}
	x.set(x.sign*y.sign, prod)
	return nil
}

// mulLimbs returns the schoolbook product a * b in fresh storage.
func mulLimbs(a, b []uint32) ([]uint32, error) {
	if len(a)+len(b)-1 > MaxLimbs {
		return nil, ErrOutOfMemory
	}
	out := make([]uint32, len(a)+len(b))
	for i := range a {
		ai := uint64(a[i])
		if ai == 0 {
			continue
		}
		var carry uint64
		k := i
		for j := range b {
			acc := uint64(out[k]) + carry + ai*uint64(b[j])
			out[k] = uint32(acc % Base) //nolint:gosec // G115: remainder is below Base.
			carry = acc / Base
			k++
		}
		for carry != 0 {
			acc := uint64(out[k]) + carry
			out[k] = uint32(acc % Base) //nolint:gosec // G115: remainder is below Base.
			carry = acc / Base
			k++
		}
	}
	out = trimLimbs(out)
	if err := checkSize(out); err != nil {
		return nil, err
	}
	return out, nil
}

// mulSmall returns a * m in fresh storage, m < Base.
func mulSmall(a []uint32, m uint32) []uint32 {
	if m == 0 || isZeroLimbs(a) {
		return []uint32{0}
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i := range a {
		acc := uint64(a[i])*uint64(m) + carry
		out[i] = uint32(acc % Base) //nolint:gosec // G115: remainder is below Base.
		carry = acc / Base
	}
	out[len(a)] = uint32(carry) //nolint:gosec // G115: carry is below Base.
	return trimLimbs(out)
}
