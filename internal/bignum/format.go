package bignum

import (
	"fmt"
	"slices"
	"strings"
)

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ToString renders x in the given radix (2..62) by repeated division. Digits
// above 9 use A-Z, then a-z.
func (x *BigInt) ToString(radix int) (string, error) {
	if err := x.valid(); err != nil {
		return "", err
	}
	if _, err := checkRadix(radix); err != nil {
		return "", err
	}
	if x.sign == 0 {
		return "0", nil
	}

	r, err := FromInt(radix)
	if err != nil {
		return "", err
	}
	w := x.Clone()
	w.sign = 1

	digits := make([]byte, 0, len(w.limbs)*LimbDigits+1)
	for w.sign != 0 {
		q, rem, err := QuoRem(w, r)
		if err != nil {
			return "", err
		}
		digits = append(digits, digitAlphabet[rem.mag()[0]])
		w = q
	}
	if x.sign < 0 {
		digits = append(digits, '-')
	}
	slices.Reverse(digits)
	return string(digits), nil
}

// Text is like ToString but renders failures inline: "<nil>" for a nil
// handle and "<invalid>" for any other error.
func (x *BigInt) Text(radix int) string {
	if x == nil {
		return "<nil>"
	}
	s, err := x.ToString(radix)
	if err != nil {
		return "<invalid>"
	}
	return s
}

// String renders x in decimal straight from its base-10^9 limbs.
func (x *BigInt) String() string {
	if x == nil {
		return "<nil>"
	}
	if x.released {
		return "<released>"
	}
	limbs := x.mag()
	var sb strings.Builder
	sb.Grow(len(limbs)*LimbDigits + 1)
	if x.sign < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(fmt.Sprintf("%d", limbs[len(limbs)-1]))
	for i := len(limbs) - 2; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%09d", limbs[i]))
	}
	return sb.String()
}

// Format implements fmt.Formatter for the verbs b, o, d, s, v, x and X.
// The '+' and '-' flags and a width are honoured.
func (x *BigInt) Format(s fmt.State, ch rune) {
	var str string
	switch ch {
	case 'd', 's', 'v':
		str = x.String()
	case 'b', 'o', 'x', 'X':
		base := map[rune]int{'b': 2, 'o': 8, 'x': 16, 'X': 16}[ch]
		var err error
		str, err = x.ToString(base)
		if err != nil {
			str = x.String()
		}
		if ch == 'x' {
			str = strings.ToLower(str)
		}
	default:
		fmt.Fprintf(s, "%%!%c(bignum.BigInt=%s)", ch, x.String())
		return
	}
	if s.Flag('+') && x.Sign() >= 0 && x.valid() == nil {
		str = "+" + str
	}
	if w, ok := s.Width(); ok && len(str) < w {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	fmt.Fprint(s, str)
}

// Dump describes the internal layout of x: sign, limb count and limbs from
// least significant.
func (x *BigInt) Dump() string {
	if err := x.valid(); err != nil {
		return "<" + err.Error() + ">"
	}
	limbs := x.mag()
	parts := make([]string, len(limbs))
	for i, l := range limbs {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return fmt.Sprintf("sign=%d len=%d limbs=[%s]", x.sign, len(limbs), strings.Join(parts, " "))
}
