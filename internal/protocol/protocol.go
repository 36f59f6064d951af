// Package protocol implements the length-prefixed binary wire format
// spoken over the websocket. Every frame starts with a two byte header
// [version, eventType]; each variable field is framed as one
// length-of-length byte, that many length bytes whose sum is the field
// size, then the field data.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/doodleduel/doodleduel-backend/internal"
)

const Version = internal.BinaryProtocolVersion

var (
	ErrShortData    = errors.New("data is too short")
	ErrBadVersion   = errors.New("protocol version mismatch")
	ErrUnknownEvent = errors.New("unknown event type")
	ErrBadUTF8      = errors.New("invalid utf-8 in string field")
)

// encodeLength renders v as bytes whose sum equals v: floor(v/255)
// copies of 0xFF plus one trailing v mod 255 byte when nonzero. Zero
// encodes as no bytes at all.
func encodeLength(v int) []byte {
	out := make([]byte, 0, v/255+1)
	for v >= 255 {
		out = append(out, 0xFF)
		v -= 255
	}
	if v > 0 {
		out = append(out, byte(v))
	}
	return out
}

// frameBuilder accumulates one outgoing frame. Field appends never
// fail; JSON fields surface marshal errors through the final build.
type frameBuilder struct {
	buf []byte
	err error
}

func newFrame(eventType byte) *frameBuilder {
	return &frameBuilder{buf: []byte{Version, eventType}}
}

func (b *frameBuilder) appendBytes(data []byte) *frameBuilder {
	lengths := encodeLength(len(data))
	b.buf = append(b.buf, byte(len(lengths)))
	b.buf = append(b.buf, lengths...)
	b.buf = append(b.buf, data...)
	return b
}

func (b *frameBuilder) appendString(s string) *frameBuilder {
	return b.appendBytes([]byte(s))
}

func (b *frameBuilder) appendU8(v uint8) *frameBuilder {
	return b.appendBytes([]byte{v})
}

func (b *frameBuilder) appendU16(v uint16) *frameBuilder {
	return b.appendBytes([]byte{byte(v >> 8), byte(v)})
}

func (b *frameBuilder) appendF64(v float64) *frameBuilder {
	bits := math.Float64bits(v)
	var raw [8]byte
	for i := 0; i < 8; i++ {
		raw[i] = byte(bits >> (56 - 8*i))
	}
	return b.appendBytes(raw[:])
}

func (b *frameBuilder) appendJSON(v any) *frameBuilder {
	data, err := json.Marshal(v)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("encode json field: %w", err)
		}
		return b
	}
	return b.appendBytes(data)
}

func (b *frameBuilder) build() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.buf, nil
}

// frameReader walks an incoming frame after the two header bytes have
// been checked. All reads are bounds checked; malformed input returns
// an error, never panics.
type frameReader struct {
	data []byte
	pos  int
}

func newFrameReader(data []byte) *frameReader {
	return &frameReader{data: data, pos: 2}
}

func (r *frameReader) bytes() ([]byte, error) {
	if r.pos >= len(r.data) {
		return nil, ErrShortData
	}
	lengthOfLength := int(r.data[r.pos])
	r.pos++
	if r.pos+lengthOfLength > len(r.data) {
		return nil, ErrShortData
	}
	size := 0
	for _, b := range r.data[r.pos : r.pos+lengthOfLength] {
		size += int(b)
	}
	r.pos += lengthOfLength
	if r.pos+size > len(r.data) {
		return nil, ErrShortData
	}
	field := r.data[r.pos : r.pos+size]
	r.pos += size
	return field, nil
}

func (r *frameReader) str() (string, error) {
	raw, err := r.bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", ErrBadUTF8
	}
	return string(raw), nil
}

func (r *frameReader) u8() (uint8, error) {
	raw, err := r.bytes()
	if err != nil {
		return 0, err
	}
	if len(raw) != 1 {
		return 0, ErrShortData
	}
	return raw[0], nil
}

func (r *frameReader) u16() (uint16, error) {
	raw, err := r.bytes()
	if err != nil {
		return 0, err
	}
	if len(raw) != 2 {
		return 0, ErrShortData
	}
	return uint16(raw[0])<<8 | uint16(raw[1]), nil
}

func (r *frameReader) f64() (float64, error) {
	raw, err := r.bytes()
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, ErrShortData
	}
	var bits uint64
	for _, b := range raw {
		bits = bits<<8 | uint64(b)
	}
	return math.Float64frombits(bits), nil
}

func (r *frameReader) jsonInto(v any) error {
	raw, err := r.bytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode json field: %w", err)
	}
	return nil
}

// checkHeader validates the two byte frame header and returns the
// event type tag.
func checkHeader(data []byte) (byte, error) {
	if len(data) < 2 {
		return 0, ErrShortData
	}
	if data[0] != Version {
		return 0, ErrBadVersion
	}
	return data[1], nil
}
