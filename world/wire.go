package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"google.golang.org/protobuf/encoding/protowire"
)

var ErrMalformedFrame = errors.New("malformed frame")

// Field numbers of the frame wire format.
const (
	frameTick      protowire.Number = 1
	frameMoveables protowire.Number = 2
	frameBullets   protowire.Number = 3
	frameSpawned   protowire.Number = 4
	frameDespawned protowire.Number = 5

	moveableID          protowire.Number = 1
	moveableCell        protowire.Number = 2
	moveableState       protowire.Number = 3
	moveableTranslation protowire.Number = 4
	moveableRotation    protowire.Number = 5

	bulletID          protowire.Number = 1
	bulletTranslation protowire.Number = 2

	shotID        protowire.Number = 1
	shotSource    protowire.Number = 2
	shotOrigin    protowire.Number = 3
	shotDirection protowire.Number = 4
)

// Marshal encodes the frame in protobuf wire format.
func (f *Frame) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, frameTick, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.Tick))
	return append(b, f.Body()...)
}

// Body is the encoded frame without its tick number, so two frames that
// describe the same world encode to the same bytes.
func (f *Frame) Body() []byte {
	var b []byte
	for _, m := range f.Moveables {
		b = protowire.AppendTag(b, frameMoveables, protowire.BytesType)
		b = protowire.AppendBytes(b, m.marshal())
	}
	for _, bullet := range f.Bullets {
		b = protowire.AppendTag(b, frameBullets, protowire.BytesType)
		b = protowire.AppendBytes(b, bullet.marshal())
	}
	for _, shot := range f.Spawned {
		b = protowire.AppendTag(b, frameSpawned, protowire.BytesType)
		b = protowire.AppendBytes(b, shot.marshal())
	}
	for _, ID := range f.Despawned {
		b = protowire.AppendTag(b, frameDespawned, protowire.BytesType)
		b = protowire.AppendString(b, ID)
	}
	return b
}

func UnmarshalFrame(b []byte) (*Frame, error) {
	f := &Frame{}
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case frameTick:
			v, n, err := consumeVarint(typ, b)
			f.Tick = int64(v)
			return n, err
		case frameMoveables:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			m, err := unmarshalMoveable(v)
			f.Moveables = append(f.Moveables, m)
			return n, err
		case frameBullets:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			bullet, err := unmarshalBullet(v)
			f.Bullets = append(f.Bullets, bullet)
			return n, err
		case frameSpawned:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			shot, err := unmarshalShot(v)
			f.Spawned = append(f.Spawned, shot)
			return n, err
		case frameDespawned:
			v, n, err := consumeBytes(typ, b)
			f.Despawned = append(f.Despawned, string(v))
			return n, err
		}
		return 0, nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (m *MoveableUpdate) marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, moveableID, protowire.BytesType)
	b = protowire.AppendString(b, m.ID)
	b = protowire.AppendTag(b, moveableCell, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Cell))
	b = protowire.AppendTag(b, moveableState, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.State))
	b = protowire.AppendTag(b, moveableTranslation, protowire.BytesType)
	b = protowire.AppendBytes(b, appendFloats(nil, m.Translation[:]...))
	b = protowire.AppendTag(b, moveableRotation, protowire.BytesType)
	b = protowire.AppendBytes(b, appendFloats(nil, m.Rotation.W, m.Rotation.V[0], m.Rotation.V[1], m.Rotation.V[2]))
	return b
}

func unmarshalMoveable(b []byte) (MoveableUpdate, error) {
	var m MoveableUpdate
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case moveableID:
			v, n, err := consumeBytes(typ, b)
			m.ID = string(v)
			return n, err
		case moveableCell:
			v, n, err := consumeVarint(typ, b)
			m.Cell = Cell(v)
			return n, err
		case moveableState:
			v, n, err := consumeVarint(typ, b)
			m.State = MovementState(v)
			return n, err
		case moveableTranslation:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			return n, readFloats(v, m.Translation[:])
		case moveableRotation:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			var q [4]float32
			if err := readFloats(v, q[:]); err != nil {
				return n, err
			}
			m.Rotation = mgl32.Quat{W: q[0], V: mgl32.Vec3{q[1], q[2], q[3]}}
			return n, nil
		}
		return 0, nil
	})
	return m, err
}

func (u *BulletUpdate) marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, bulletID, protowire.BytesType)
	b = protowire.AppendString(b, u.ID)
	b = protowire.AppendTag(b, bulletTranslation, protowire.BytesType)
	b = protowire.AppendBytes(b, appendFloats(nil, u.Translation[:]...))
	return b
}

func unmarshalBullet(b []byte) (BulletUpdate, error) {
	var u BulletUpdate
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case bulletID:
			v, n, err := consumeBytes(typ, b)
			u.ID = string(v)
			return n, err
		case bulletTranslation:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			return n, readFloats(v, u.Translation[:])
		}
		return 0, nil
	})
	return u, err
}

func (s *Shot) marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, shotID, protowire.BytesType)
	b = protowire.AppendString(b, s.ID)
	b = protowire.AppendTag(b, shotSource, protowire.BytesType)
	b = protowire.AppendString(b, s.Source)
	b = protowire.AppendTag(b, shotOrigin, protowire.BytesType)
	b = protowire.AppendBytes(b, appendFloats(nil, s.Origin[:]...))
	b = protowire.AppendTag(b, shotDirection, protowire.BytesType)
	b = protowire.AppendBytes(b, appendFloats(nil, s.Direction[:]...))
	return b
}

func unmarshalShot(b []byte) (Shot, error) {
	var s Shot
	err := walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case shotID, shotSource:
			v, n, err := consumeBytes(typ, b)
			if num == shotID {
				s.ID = string(v)
			} else {
				s.Source = string(v)
			}
			return n, err
		case shotOrigin, shotDirection:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return n, err
			}
			if num == shotOrigin {
				return n, readFloats(v, s.Origin[:])
			}
			return n, readFloats(v, s.Direction[:])
		}
		return 0, nil
	})
	return s, err
}

// walkFields calls field for every field in b. field returns how many bytes
// of the value it consumed, or 0 to skip an unknown field.
func walkFields(b []byte, field func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformedFrame, protowire.ParseError(n))
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrMalformedFrame, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	return nil
}

func consumeVarint(typ protowire.Type, b []byte) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, fmt.Errorf("%w: want varint, got wire type %d", ErrMalformedFrame, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedFrame, protowire.ParseError(n))
	}
	return v, n, nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, fmt.Errorf("%w: want bytes, got wire type %d", ErrMalformedFrame, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedFrame, protowire.ParseError(n))
	}
	return v, n, nil
}

// Floats are packed as consecutive little-endian fixed32 values.
func appendFloats(b []byte, fs ...float32) []byte {
	for _, f := range fs {
		b = protowire.AppendFixed32(b, math.Float32bits(f))
	}
	return b
}

func readFloats(b []byte, out []float32) error {
	if len(b) != 4*len(out) {
		return fmt.Errorf("%w: want %d packed floats, got %d bytes", ErrMalformedFrame, len(out), len(b))
	}
	for i := range out {
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformedFrame, protowire.ParseError(n))
		}
		out[i] = math.Float32frombits(v)
		b = b[n:]
	}
	return nil
}
