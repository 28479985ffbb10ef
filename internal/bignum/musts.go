package bignum

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) *BigInt {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustAdd is like [Add] but panics on error.
func MustAdd(a, b *BigInt) *BigInt {
	z, err := Add(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", a, b, err))
	}
	return z
}

// MustSub is like [Sub] but panics on error.
func MustSub(a, b *BigInt) *BigInt {
	z, err := Sub(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", a, b, err))
	}
	return z
}

// MustMul is like [Mul] but panics on error.
func MustMul(a, b *BigInt) *BigInt {
	z, err := Mul(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v, %v) failed: %v", a, b, err))
	}
	return z
}

// MustDiv is like [Div] but panics on error.
func MustDiv(a, b *BigInt) *BigInt {
	z, err := Div(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v, %v) failed: %v", a, b, err))
	}
	return z
}

// MustMod is like [Mod] but panics on error.
func MustMod(a, b *BigInt) *BigInt {
	z, err := Mod(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v, %v) failed: %v", a, b, err))
	}
	return z
}
