package bignum

// Add returns a + b without modifying either operand.
func Add(a, b *BigInt) (*BigInt, error) {
	return pure(a, b, (*BigInt).AddAssign)
}

// Sub returns a - b without modifying either operand.
func Sub(a, b *BigInt) (*BigInt, error) {
	return pure(a, b, (*BigInt).SubAssign)
}

// Mul returns a * b without modifying either operand.
func Mul(a, b *BigInt) (*BigInt, error) {
	return pure(a, b, (*BigInt).MulAssign)
}

// Div returns floor(a / b) without modifying either operand.
func Div(a, b *BigInt) (*BigInt, error) {
	return pure(a, b, (*BigInt).DivAssign)
}

// Mod returns a - floor(a/b)*b without modifying either operand.
func Mod(a, b *BigInt) (*BigInt, error) {
	return pure(a, b, (*BigInt).ModAssign)
}

// Pow returns a raised to |degree|.
func Pow(a *BigInt, degree int) (*BigInt, error) {
	if err := a.valid(); err != nil {
		return nil, err
	}
	z := a.Clone()
	if err := z.PowAssign(degree); err != nil {
		return nil, err
	}
	return z, nil
}

// Root returns the integer degree-th root of a. See RootAssign.
func Root(a *BigInt, degree int) (*BigInt, error) {
	if err := a.valid(); err != nil {
		return nil, err
	}
	z := a.Clone()
	if err := z.RootAssign(degree); err != nil {
		return nil, err
	}
	return z, nil
}

func pure(a, b *BigInt, op func(*BigInt, *BigInt) error) (*BigInt, error) {
	if err := check(a, b); err != nil {
		return nil, err
	}
	z := a.Clone()
	if err := op(z, b); err != nil {
		return nil, err
	}
	return z, nil
}
