package bignum

// AddAssign sets x = x + y.
func (x *BigInt) AddAssign(y *BigInt) error {
	if err := check(x, y); err != nil {
		return err
	}
	return x.combine(y, y.sign)
}

// SubAssign sets x = x - y.
func (x *BigInt) SubAssign(y *BigInt) error {
	if err := check(x, y); err != nil {
		return err
	}
	return x.combine(y, -y.sign)
}

// combine sets x = x + ySign*|y|. Addition and subtraction both land here, so
// carry and borrow handling live in addLimbs and subLimbs only.
func (x *BigInt) combine(y *BigInt, ySign int) error {
	switch {
	case ySign == 0:
		return nil
	case x.sign == 0:
		x.set(ySign, cloneLimbs(y.mag()))
		return nil
	case x.sign == ySign:
		sum, err := addLimbs(x.mag(), y.mag())
		if err != nil {
			return err
		}
		x.set(ySign, sum)
		return nil
	}

	switch c := cmpLimbs(x.mag(), y.mag()); {
	case c == 0:
		x.set(0, nil)
	case c > 0:
		x.set(x.sign, subLimbs(x.mag(), y.mag()))
	default:
		x.set(ySign, subLimbs(y.mag(), x.mag()))
	}
	return nil
}

// addLimbs returns a + b in fresh storage.
func addLimbs(a, b []uint32) ([]uint32, error) {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	i := 0
	for ; i < len(b); i++ {
		out[i], carry = addLimb(a[i], b[i], carry)
	}
	for ; i < len(a); i++ {
		out[i], carry = addLimb(a[i], 0, carry)
	}
	out[len(a)] = carry
	out = trimLimbs(out)
	if err := checkSize(out); err != nil {
		return nil, err
	}
	return out, nil
}

func addLimb(a, b, carry uint32) (sum, carryOut uint32) {
	sum = a + b + carry
	if sum >= Base {
		return sum - Base, 1
	}
	return sum, 0
}

// subLimbs returns a - b in fresh storage. It requires a >= b.
func subLimbs(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint32
	for i := range a {
		sub := borrow
		if i < len(b) {
			sub += b[i]
		}
		if a[i] >= sub {
			out[i] = a[i] - sub
			borrow = 0
		} else {
			out[i] = a[i] + Base - sub
			borrow = 1
		}
	}
	return trimLimbs(out)
}

// addSmall returns a + v in fresh storage, v < Base.
func addSmall(a []uint32, v uint32) []uint32 {
	out := make([]uint32, len(a)+1)
	copy(out, a)
	carry := v
	for i := 0; carry != 0; i++ {
		out[i], carry = addLimb(out[i], 0, carry)
	}
	return trimLimbs(out)
}
