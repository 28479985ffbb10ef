package bignum

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// MaxRadix is the largest radix accepted by SetStringRadix and ToString.
const MaxRadix = 62

var ErrParse = errors.New("invalid numeric format")

// Parse returns the value of the decimal string s.
func Parse(s string) (*BigInt, error) {
	z := NewZero()
	if err := z.SetString(s); err != nil {
		return nil, err
	}
	return z, nil
}

// ParseRadix returns the value of s written in the given radix.
func ParseRadix(s string, radix int) (*BigInt, error) {
	z := NewZero()
	if err := z.SetStringRadix(s, radix); err != nil {
		return nil, err
	}
	return z, nil
}

// FromInt returns a BigInt holding n.
func FromInt(n int) (*BigInt, error) {
	return FromInt64(int64(n))
}

// FromInt64 returns a BigInt holding n.
func FromInt64(n int64) (*BigInt, error) {
	z := NewZero()
	if err := z.SetInt64(n); err != nil {
		return nil, err
	}
	return z, nil
}

// SetInt64 sets x to n.
func (x *BigInt) SetInt64(n int64) error {
	if err := x.valid(); err != nil {
		return err
	}
	var mag uint64
	if n < 0 {
		mag = uint64(-(n + 1)) + 1 //nolint:gosec // G115: -(n+1) is non-negative.
	} else {
		mag = uint64(n)
	}
	if err := x.SetString(strconv.FormatUint(mag, 10)); err != nil {
		return err
	}
	if n < 0 {
		x.sign = -1
	}
	return nil
}

// SetString sets x to the value of the decimal string s: an optional sign
// followed by digits. Leading zeros are ignored and an empty digit string is
// zero. On error x is left unchanged.
func (x *BigInt) SetString(s string) error {
	if err := x.valid(); err != nil {
		return err
	}
	sign, digits := splitSign(s)
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		x.set(0, nil)
		return nil
	}
	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return fmt.Errorf("%w: %q", ErrParse, s)
		}
	}

	n := (len(digits) + LimbDigits - 1) / LimbDigits
	if n > MaxLimbs {
		return ErrOutOfMemory
	}
	limbs := make([]uint32, n)
	for i, end := 0, len(digits); end > 0; i, end = i+1, end-LimbDigits {
		start := max(end-LimbDigits, 0)
		var v uint32
		for _, ch := range []byte(digits[start:end]) {
			v = v*10 + uint32(ch-'0')
		}
		limbs[i] = v
	}
	x.set(sign, limbs)
	return nil
}

// SetStringRadix sets x to the value of s written in radix (2..62) using
// Horner's rule. A non-positive radix is ignored: x is left unchanged, a
// warning is logged and nil is returned.
func (x *BigInt) SetStringRadix(s string, radix int) error {
	if err := x.valid(); err != nil {
		return err
	}
	if radix <= 0 {
		warn("parse", "non-positive radix, value left unchanged", slog.Int("radix", radix))
		return nil
	}
	r, err := checkRadix(radix)
	if err != nil {
		return err
	}

	sign, digits := splitSign(s)
	digits = strings.TrimLeft(digits, "0")
	acc := []uint32{0}
	for i := range len(digits) {
		d, ok := digitValue(digits[i], radix)
		if !ok {
			return fmt.Errorf("%w: %q in base %d", ErrParse, s, radix)
		}
		acc = addSmall(mulSmall(acc, r), d)
		if err := checkSize(acc); err != nil {
			return err
		}
	}
	x.set(sign, acc)
	return nil
}

// checkRadix validates radix and narrows it to a limb multiplier.
func checkRadix(radix int) (uint32, error) {
	if radix < 2 || radix > MaxRadix {
		return 0, fmt.Errorf("%w: radix %d (expected 2..%d)", ErrInvalidArgument, radix, MaxRadix)
	}
	return safecast.Conv[uint32](radix)
}

func splitSign(s string) (int, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, s
	}
	switch s[0] {
	case '-':
		return -1, s[1:]
	case '+':
		return 1, s[1:]
	}
	return 1, s
}

// digitValue maps 0-9, A-Z and a-z to digit values. Letters are
// case-insensitive up to radix 36; above that a-z continue at 36.
func digitValue(ch byte, radix int) (uint32, bool) {
	var v int
	switch {
	case ch >= '0' && ch <= '9':
		v = int(ch - '0')
	case ch >= 'A' && ch <= 'Z':
		v = int(ch-'A') + 10
	case ch >= 'a' && ch <= 'z':
		v = int(ch-'a') + 10
		if radix > 36 {
			v += 26
		}
	default:
		return 0, false
	}
	if v >= radix {
		return 0, false
	}
	d, err := safecast.Conv[uint32](v)
	return d, err == nil
}
