package bignum

import (
	"encoding/binary"
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrCorrupt indicates an encoded value that violates the representation
// invariants.
var ErrCorrupt = errors.New("corrupt encoded bigint")

var (
	_ msgpack.CustomEncoder = (*BigInt)(nil)
	_ msgpack.CustomDecoder = (*BigInt)(nil)
)

// MarshalText implements encoding.TextMarshaler using decimal notation.
func (x *BigInt) MarshalText() ([]byte, error) {
	if err := x.valid(); err != nil {
		return nil, err
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *BigInt) UnmarshalText(text []byte) error {
	if x == nil {
		return ErrNullObject
	}
	x.released = false
	return x.SetString(string(text))
}

// MarshalBinary encodes x as one sign byte (0 zero, 1 positive, 2 negative)
// followed by big-endian limbs, least significant limb first.
func (x *BigInt) MarshalBinary() ([]byte, error) {
	if err := x.valid(); err != nil {
		return nil, err
	}
	limbs := x.mag()
	buf := make([]byte, 0, 1+4*len(limbs))
	buf = append(buf, signByte(x.sign))
	for _, l := range limbs {
		buf = binary.BigEndian.AppendUint32(buf, l)
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *BigInt) UnmarshalBinary(data []byte) error {
	if x == nil {
		return ErrNullObject
	}
	if len(data) < 5 || (len(data)-1)%4 != 0 {
		return fmt.Errorf("%w: %d bytes", ErrCorrupt, len(data))
	}
	var sign int
	switch data[0] {
	case 0:
		sign = 0
	case 1:
		sign = 1
	case 2:
		sign = -1
	default:
		return fmt.Errorf("%w: sign byte %d", ErrCorrupt, data[0])
	}
	limbs := make([]uint32, (len(data)-1)/4)
	for i := range limbs {
		limbs[i] = binary.BigEndian.Uint32(data[1+4*i:])
	}
	return x.install(sign, limbs)
}

// EncodeMsgpack encodes x as [sign, [limbs...]].
func (x *BigInt) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := x.valid(); err != nil {
		return err
	}
	sign, err := safecast.Conv[int8](x.sign)
	if err != nil {
		return err
	}
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeInt8(sign); err != nil {
		return err
	}
	limbs := x.mag()
	if err := enc.EncodeArrayLen(len(limbs)); err != nil {
		return err
	}
	for _, l := range limbs {
		if err := enc.EncodeUint32(l); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack decodes the layout written by EncodeMsgpack.
func (x *BigInt) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: expected 2 fields, got %d", ErrCorrupt, n)
	}
	sign, err := dec.DecodeInt8()
	if err != nil {
		return err
	}
	count, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if count < 1 || count > MaxLimbs {
		return fmt.Errorf("%w: %d limbs", ErrCorrupt, count)
	}
	limbs := make([]uint32, count)
	for i := range limbs {
		if limbs[i], err = dec.DecodeUint32(); err != nil {
			return err
		}
	}
	return x.install(int(sign), limbs)
}

// install validates decoded parts against the representation invariants and
// stores them in x.
func (x *BigInt) install(sign int, limbs []uint32) error {
	if len(limbs) > MaxLimbs {
		return ErrOutOfMemory
	}
	for _, l := range limbs {
		if l >= Base {
			return fmt.Errorf("%w: limb %d out of range", ErrCorrupt, l)
		}
	}
	if len(limbs) > 1 && limbs[len(limbs)-1] == 0 {
		return fmt.Errorf("%w: leading zero limb", ErrCorrupt)
	}
	zero := isZeroLimbs(limbs)
	if zero != (sign == 0) || sign < -1 || sign > 1 {
		return fmt.Errorf("%w: sign %d does not match magnitude", ErrCorrupt, sign)
	}
	x.released = false
	x.sign = sign
	x.limbs = limbs
	return nil
}

func signByte(sign int) byte {
	switch {
	case sign > 0:
		return 1
	case sign < 0:
		return 2
	}
	return 0
}
