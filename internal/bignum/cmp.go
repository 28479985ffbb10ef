package bignum

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func Compare(a, b *BigInt) (int, error) {
	if err := check(a, b); err != nil {
		return 0, err
	}
	return compare(a, b), nil
}

// Cmp compares x and y. A nil or released handle compares as zero.
func (x *BigInt) Cmp(y *BigInt) int {
	return compare(x, y)
}

// CmpAbs compares the magnitudes of x and y.
func (x *BigInt) CmpAbs(y *BigInt) int {
	return cmpLimbs(magOrZero(x), magOrZero(y))
}

func compare(a, b *BigInt) int {
	as, bs := a.Sign(), b.Sign()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	case as == 0:
		return 0
	}
	return as * cmpLimbs(a.mag(), b.mag())
}

func magOrZero(x *BigInt) []uint32 {
	if x.valid() != nil {
		return zeroLimbs
	}
	return x.mag()
}

// cmpLimbs compares two normalised magnitudes.
func cmpLimbs(a, b []uint32) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
