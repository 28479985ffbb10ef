package bignum

import (
	"errors"
	"log/slog"
	"math"
	"sync/atomic"
)

const (
	// Base is the radix of a single limb.
	Base = 1_000_000_000
	// LimbDigits is the number of decimal digits stored in one limb.
	LimbDigits = 9
	// MaxLimbs is the maximum number of limbs allowed.
	MaxLimbs = 1_000_000
)

var (
	// ErrNullObject indicates a nil or released handle.
	ErrNullObject = errors.New("null object")
	// ErrOutOfMemory indicates the numeric size limit was exceeded.
	ErrOutOfMemory = errors.New("numeric size limit exceeded")
	// ErrDivByZero indicates an attempt to divide by zero.
	ErrDivByZero = errors.New("division by zero")
	// ErrInvalidArgument indicates a radix or degree outside the supported range.
	ErrInvalidArgument = errors.New("invalid argument")
)

// BigInt is an arbitrary-precision signed integer.
//
// The zero value is canonical zero and ready to use. A BigInt must not be
// mutated from several goroutines at once.
type BigInt struct {
	// sign is -1, 0 or +1; it is 0 iff the value is zero.
	sign int
	// limbs are base-10^9 little-endian (limbs[0] is least significant).
	//
	// Canonical zero is sign 0 with limbs [0]; a nil slice reads as zero.
	limbs    []uint32
	released bool
}

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger that receives soft-warning records. A nil logger
// restores slog.Default.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// warn records an ignored request. The operation still reports success.
func warn(op, msg string, args ...any) {
	logger().Warn(msg, append([]any{slog.String("op", op)}, args...)...)
}

// NewZero returns a new BigInt holding zero.
func NewZero() *BigInt {
	return &BigInt{limbs: []uint32{0}}
}

func one() *BigInt {
	return &BigInt{sign: 1, limbs: []uint32{1}}
}

// Clone returns an independent deep copy of x, or nil if x is nil or released.
func (x *BigInt) Clone() *BigInt {
	if x.valid() != nil {
		return nil
	}
	return &BigInt{sign: x.sign, limbs: cloneLimbs(x.mag())}
}

// Clone returns an independent deep copy of x.
func Clone(x *BigInt) (*BigInt, error) {
	if err := x.valid(); err != nil {
		return nil, err
	}
	return x.Clone(), nil
}

// Release drops the storage owned by x. Any later operation on x reports
// ErrNullObject.
func (x *BigInt) Release() error {
	if err := x.valid(); err != nil {
		return err
	}
	x.sign = 0
	x.limbs = nil
	x.released = true
	return nil
}

// Sign returns -1, 0 or +1. Invalid handles report 0.
func (x *BigInt) Sign() int {
	if x.valid() != nil {
		return 0
	}
	return x.sign
}

// IsZero reports whether x is zero.
func (x *BigInt) IsZero() bool {
	return x.Sign() == 0
}

// Negate flips the sign of x in place.
func (x *BigInt) Negate() error {
	if err := x.valid(); err != nil {
		return err
	}
	x.sign = -x.sign
	return nil
}

// Abs replaces x with its absolute value.
func (x *BigInt) Abs() error {
	if err := x.valid(); err != nil {
		return err
	}
	if x.sign < 0 {
		x.sign = 1
	}
	return nil
}

// Limbs returns a copy of the magnitude, least significant limb first.
func (x *BigInt) Limbs() []uint32 {
	if x.valid() != nil {
		return nil
	}
	return cloneLimbs(x.mag())
}

// Int64 converts x to int64 if it fits.
func (x *BigInt) Int64() (int64, bool) {
	if x.valid() != nil {
		return 0, false
	}
	limbs := x.mag()
	var mag uint64
	for i := len(limbs) - 1; i >= 0; i-- {
		if mag > (math.MaxUint64-uint64(limbs[i]))/Base {
			return 0, false
		}
		mag = mag*Base + uint64(limbs[i])
	}
	if x.sign >= 0 {
		if mag > math.MaxInt64 {
			return 0, false
		}
		return int64(mag), true
	}
	// Negative: allow magnitude up to 2^63.
	if mag > math.MaxInt64+1 {
		return 0, false
	}
	if mag == math.MaxInt64+1 {
		return math.MinInt64, true
	}
	return -int64(mag), true
}

func (x *BigInt) valid() error {
	if x == nil || x.released {
		return ErrNullObject
	}
	return nil
}

func check(xs ...*BigInt) error {
	for _, x := range xs {
		if err := x.valid(); err != nil {
			return err
		}
	}
	return nil
}

var zeroLimbs = []uint32{0}

// mag returns the magnitude for reading. Callers must not write to it.
func (x *BigInt) mag() []uint32 {
	if len(x.limbs) == 0 {
		return zeroLimbs
	}
	return x.limbs
}

// set installs freshly built limbs as the value of x. The slice must not be
// referenced by any other BigInt.
func (x *BigInt) set(sign int, limbs []uint32) {
	limbs = trimLimbs(limbs)
	if isZeroLimbs(limbs) {
		x.sign = 0
		x.limbs = []uint32{0}
		return
	}
	x.sign = sign
	x.limbs = limbs
}

func cloneLimbs(limbs []uint32) []uint32 {
	out := make([]uint32, len(limbs))
	copy(out, limbs)
	return out
}

// trimLimbs strips most-significant zero limbs, keeping at least one limb.
func trimLimbs(limbs []uint32) []uint32 {
	for len(limbs) > 1 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	if len(limbs) == 0 {
		return []uint32{0}
	}
	return limbs
}

func isZeroLimbs(limbs []uint32) bool {
	return len(limbs) == 0 || (len(limbs) == 1 && limbs[0] == 0)
}

func checkSize(limbs []uint32) error {
	if len(limbs) > MaxLimbs {
		return ErrOutOfMemory
	}
	return nil
}
