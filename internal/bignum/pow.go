package bignum

// PowAssign raises x to |degree| by square-and-multiply. A zero degree yields
// one, zero included.
func (x *BigInt) PowAssign(degree int) error {
	if err := x.valid(); err != nil {
		return err
	}
	if degree == 0 {
		x.set(1, []uint32{1})
		return nil
	}
	if degree == 1 || x.sign == 0 {
		return nil
	}

	n := absDegree(degree)
	acc := one()
	base := x.Clone()
	for n > 0 {
		if n&1 == 0 {
			n >>= 1
			if err := base.MulAssign(base); err != nil {
				return err
			}
			continue
		}
		n--
		if err := acc.MulAssign(base); err != nil {
			return err
		}
	}
	x.set(acc.sign, acc.limbs)
	return nil
}

func absDegree(degree int) uint64 {
	if degree < 0 {
		return uint64(-(degree + 1)) + 1 //nolint:gosec // G115: -(degree+1) is non-negative.
	}
	return uint64(degree)
}
