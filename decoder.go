package litval

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
)

// ErrMismatch reports that literal text is not the requested kind of
// literal. It is an ordinary, expected result: dispatchers try each kind in
// turn and treat a mismatch as "try the next one".
var ErrMismatch = errors.New("literal kind mismatch")

// ErrMalformed reports literal text that matches a kind but violates the
// literal grammar. The decoders assume their input is an already valid
// token, so a malformed literal is an upstream contract violation and is
// never recovered internally.
var ErrMalformed = errors.New("malformed literal")

// NotSupportedError reports an [Unmarshal] target type that cannot be filled
// from a literal token.
type NotSupportedError struct {
	Type reflect.Type
}

func (n NotSupportedError) Error() string {
	return fmt.Sprintf("type %q is not supported", n.Type)
}

// Decoder decodes literal tokens. The zero value is ready to use and is what
// the package level functions delegate to. A Decoder is safe for concurrent
// use.
type Decoder struct {
	// Accept the u128/i128 suffixes and accumulate integer magnitudes to
	// 128 bits instead of treating everything past 64 bits as overflow.
	extendedWidths bool

	// Cache for setters, indexed by reflect.Type
	setterCache sync.Map
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// WithExtendedWidths returns a Decoder with 128 bit integer literals
// enabled. Magnitudes above 64 bits are read through [Int.Value128].
func (d *Decoder) WithExtendedWidths() *Decoder {
	if d.extendedWidths {
		return d
	}
	return &Decoder{extendedWidths: true}
}

// The default Decoder instance.
var dec Decoder

// Unmarshal decodes a literal token into target using the default decoder.
// See [Decoder.Unmarshal].
func Unmarshal(token fmt.Stringer, target any) error {
	return dec.Unmarshal(token, target)
}

// UnmarshalNew decodes a literal token into a fresh T using the default
// decoder.
func UnmarshalNew[T any](token fmt.Stringer) (T, error) {
	var target T
	err := dec.Unmarshal(token, &target)
	return target, err
}

// A setter stores the value decoded from a literal into the reflect.Value
type setter func(Value, reflect.Value) error

// A set of types that are currently in construction
type typeSet map[reflect.Type]struct{}

var tyTextUnmarshaler = reflect.TypeFor[encoding.TextUnmarshaler]()

// Unmarshal decodes a literal token into the target, which must be a non-nil
// pointer. Integer targets take their value from an integer literal whose
// suffix and magnitude fit the target's width (with Go's int and uint
// standing in for isize and usize); a uint8 target additionally accepts a
// byte literal and an int32 target a char literal. Float targets decode
// float literals, string targets string literals, []byte targets byte string
// literals. A target implementing [encoding.TextUnmarshaler] receives the
// decoded string value.
func (d *Decoder) Unmarshal(token fmt.Stringer, target any) error {
	targetValue := reflect.ValueOf(target).Elem()

	// build the setter for the targets type
	setter, err := d.setterOf(typeSet{}, targetValue.Type())
	if err != nil {
		return err
	}

	return setter(d.Of(token), targetValue)
}

func (d *Decoder) setterOf(inConstruction typeSet, ty reflect.Type) (setter, error) {
	if cached, ok := d.setterCache.Load(ty); ok {
		return cached.(setter), nil
	}

	if _, ok := inConstruction[ty]; ok {
		// detected a cycle. return a setter that does a cache lookup when executed.
		// we assume that the actual setter will be in the cache once this setter is executed.
		lazySetter := func(source Value, target reflect.Value) error {
			cached, _ := d.setterCache.Load(ty)
			return cached.(setter)(source, target)
		}

		return lazySetter, nil
	}

	inConstruction[ty] = struct{}{}

	setter, err := d.makeSetterOf(inConstruction, ty)
	if err != nil {
		return nil, err
	}

	d.setterCache.Store(ty, setter)

	return setter, nil
}

func (d *Decoder) makeSetterOf(inConstruction typeSet, ty reflect.Type) (setter, error) {
	if reflect.PointerTo(ty).Implements(tyTextUnmarshaler) {
		return setTextUnmarshaler, nil
	}

	switch ty.Kind() {
	case reflect.Int:
		return makeSetInt(assignInt[int]), nil

	case reflect.Int8:
		return makeSetInt(assignInt[int8]), nil

	case reflect.Int16:
		return makeSetInt(assignInt[int16]), nil

	case reflect.Int32:
		return setRune, nil

	case reflect.Int64:
		return makeSetInt(assignInt[int64]), nil

	case reflect.Uint:
		return makeSetInt(assignUint[uint]), nil

	case reflect.Uint8:
		return setByte, nil

	case reflect.Uint16:
		return makeSetInt(assignUint[uint16]), nil

	case reflect.Uint32:
		return makeSetInt(assignUint[uint32]), nil

	case reflect.Uint64:
		return makeSetInt(assignUint[uint64]), nil

	case reflect.Float32:
		return makeSetFloat[float32](), nil

	case reflect.Float64:
		return makeSetFloat[float64](), nil

	case reflect.String:
		return setString, nil

	case reflect.Slice:
		if ty.Elem().Kind() == reflect.Uint8 {
			return setByteSlice, nil
		}
		return nil, NotSupportedError{Type: ty}

	case reflect.Pointer:
		return d.makeSetPointer(inConstruction, ty)

	default:
		return nil, NotSupportedError{Type: ty}
	}
}

func (d *Decoder) makeSetPointer(inConstruction typeSet, ty reflect.Type) (setter, error) {
	pointeeType := ty.Elem()

	pointeeSetter, err := d.setterOf(inConstruction, pointeeType)
	if err != nil {
		return nil, err
	}

	setter := func(source Value, target reflect.Value) error {
		// newValue is now a pointer to an instance of the pointeeType
		newValue := reflect.New(pointeeType)
		if err := pointeeSetter(source, newValue.Elem()); err != nil {
			return err
		}

		// set pointer to the new value
		target.Set(newValue)

		return nil
	}

	return setter, err
}

func assignInt[T constraints.Signed](target reflect.Value, n T) {
	target.SetInt(int64(n))
}

func assignUint[T constraints.Unsigned](target reflect.Value, n T) {
	target.SetUint(uint64(n))
}

func makeSetInt[T constraints.Integer](assign func(reflect.Value, T)) setter {
	return func(source Value, target reflect.Value) error {
		lit, err := source.AsInt()
		if err != nil {
			return fmt.Errorf("decode integer literal: %w", err)
		}

		n, err := IntValue[T](lit)
		if err != nil {
			return fmt.Errorf("extract %T value: %w", n, err)
		}

		assign(target, n)
		return nil
	}
}

func makeSetFloat[T constraints.Float]() setter {
	return func(source Value, target reflect.Value) error {
		lit, err := source.AsFloat()
		if err != nil {
			return fmt.Errorf("decode float literal: %w", err)
		}

		n, err := FloatValue[T](lit)
		if err != nil {
			return fmt.Errorf("extract %T value: %w", n, err)
		}

		target.SetFloat(float64(n))
		return nil
	}
}

// setByte fills a uint8 from an integer literal, falling back to a byte
// literal (`b'.'`) when the text is not an integer at all.
func setByte(source Value, target reflect.Value) error {
	lit, err := source.AsInt()
	if err == nil {
		n, err := IntValue[uint8](lit)
		if err != nil {
			return fmt.Errorf("extract uint8 value: %w", err)
		}
		target.SetUint(uint64(n))
		return nil
	}
	if !errors.Is(err, ErrMismatch) {
		return fmt.Errorf("decode integer literal: %w", err)
	}

	b, err := source.AsByte()
	if err != nil {
		return fmt.Errorf("decode byte literal: %w", err)
	}
	target.SetUint(uint64(b))
	return nil
}

// setRune fills an int32 from an integer literal, falling back to a char
// literal (`'.'`) when the text is not an integer at all.
func setRune(source Value, target reflect.Value) error {
	lit, err := source.AsInt()
	if err == nil {
		n, err := IntValue[int32](lit)
		if err != nil {
			return fmt.Errorf("extract int32 value: %w", err)
		}
		target.SetInt(int64(n))
		return nil
	}
	if !errors.Is(err, ErrMismatch) {
		return fmt.Errorf("decode integer literal: %w", err)
	}

	ch, err := source.AsChar()
	if err != nil {
		return fmt.Errorf("decode char literal: %w", err)
	}
	target.SetInt(int64(ch))
	return nil
}

func setString(source Value, target reflect.Value) error {
	stringValue, err := source.AsString()
	if err != nil {
		return fmt.Errorf("decode string literal: %w", err)
	}

	target.SetString(stringValue)

	return nil
}

func setByteSlice(source Value, target reflect.Value) error {
	bytesValue, err := source.AsBytes()
	if err != nil {
		return fmt.Errorf("decode byte string literal: %w", err)
	}

	target.SetBytes(bytesValue)

	return nil
}

func setTextUnmarshaler(source Value, target reflect.Value) error {
	text, err := source.AsString()
	if err != nil {
		return fmt.Errorf("decode string literal: %w", err)
	}

	m := target.Addr().Interface().(encoding.TextUnmarshaler)
	return m.UnmarshalText([]byte(text))
}
