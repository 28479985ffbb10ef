package bignum

import "fmt"

// Fibonacci returns F(n) with F(1) = F(2) = 1.
func Fibonacci(n int) (*BigInt, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: fibonacci index %d", ErrInvalidArgument, n)
	}
	a, b := one(), one()
	// a and b leapfrog each other; after step j the newer one is F(j+1).
	for j := 2; j < n; j++ {
		var err error
		if j%2 == 0 {
			err = a.AddAssign(b)
		} else {
			err = b.AddAssign(a)
		}
		if err != nil {
			return nil, err
		}
	}
	if n%2 == 1 {
		return a, nil
	}
	return b, nil
}
