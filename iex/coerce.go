package iex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// Number is the set of types a string-encoded number can be parsed into.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ParseNumber parses text as a T. The service sends absent numbers as
// empty strings, so empty text yields 0.
func ParseNumber[T Number](field, text string) (T, error) {
	var zero T
	if text == "" {
		return zero, nil
	}
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(text, 10, t.Bits())
		if err != nil {
			return zero, &DecodeError{Field: field, Raw: text, Err: err}
		}
		return T(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(text, 10, t.Bits())
		if err != nil {
			return zero, &DecodeError{Field: field, Raw: text, Err: err}
		}
		return T(v), nil
	default:
		v, err := strconv.ParseFloat(text, t.Bits())
		if err != nil {
			return zero, &DecodeError{Field: field, Raw: text, Err: err}
		}
		return T(v), nil
	}
}

// ParseFlag interprets a single-letter flag. Only "N", "F" and the empty
// string mean false.
func ParseFlag(text string) bool {
	switch text {
	case "N", "F", "":
		return false
	default:
		return true
	}
}

var null = []byte("null")

// typeError is reported to encoding/json, which fills in the struct field
// before the error reaches Convert.
func typeError(raw string, t reflect.Type) error {
	return &json.UnmarshalTypeError{Value: raw, Type: t}
}

func unmarshalNumber[T Number](b []byte) (T, error) {
	var zero T
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, null) {
		return zero, nil
	}
	text := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &text); err != nil {
			return zero, err
		}
	}
	v, err := ParseNumber[T]("", text)
	if err != nil {
		return zero, typeError(text, reflect.TypeOf(zero))
	}
	return v, nil
}

func unmarshalFlag(b []byte) (bool, error) {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, null):
		return false, nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return false, err
		}
		return ParseFlag(s), nil
	case string(b) == "true":
		return true, nil
	case string(b) == "false":
		return false, nil
	}
	return false, typeError(string(b), reflect.TypeOf(false))
}

// StringInt64 is a signed integer the service transmits as a string.
type StringInt64 int64

func (n *StringInt64) UnmarshalJSON(b []byte) error {
	v, err := unmarshalNumber[int64](b)
	if err != nil {
		return err
	}
	*n = StringInt64(v)
	return nil
}

func (n StringInt64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(n), 10))
}

func (n *StringInt64) UnmarshalEasyJSON(l *jlexer.Lexer) {
	if !l.Ok() {
		return
	}
	v, err := unmarshalNumber[int64](l.Raw())
	if err != nil {
		l.AddError(err)
		return
	}
	*n = StringInt64(v)
}

func (n StringInt64) MarshalEasyJSON(w *jwriter.Writer) {
	w.String(strconv.FormatInt(int64(n), 10))
}

// StringUint64 is an unsigned integer the service transmits as a string.
type StringUint64 uint64

func (n *StringUint64) UnmarshalJSON(b []byte) error {
	v, err := unmarshalNumber[uint64](b)
	if err != nil {
		return err
	}
	*n = StringUint64(v)
	return nil
}

func (n StringUint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(n), 10))
}

func (n *StringUint64) UnmarshalEasyJSON(l *jlexer.Lexer) {
	if !l.Ok() {
		return
	}
	v, err := unmarshalNumber[uint64](l.Raw())
	if err != nil {
		l.AddError(err)
		return
	}
	*n = StringUint64(v)
}

func (n StringUint64) MarshalEasyJSON(w *jwriter.Writer) {
	w.String(strconv.FormatUint(uint64(n), 10))
}

// StringFloat64 is a floating point number the service transmits as a string.
type StringFloat64 float64

func (n *StringFloat64) UnmarshalJSON(b []byte) error {
	v, err := unmarshalNumber[float64](b)
	if err != nil {
		return err
	}
	*n = StringFloat64(v)
	return nil
}

func (n StringFloat64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(float64(n), 'f', -1, 64))
}

func (n *StringFloat64) UnmarshalEasyJSON(l *jlexer.Lexer) {
	if !l.Ok() {
		return
	}
	v, err := unmarshalNumber[float64](l.Raw())
	if err != nil {
		l.AddError(err)
		return
	}
	*n = StringFloat64(v)
}

func (n StringFloat64) MarshalEasyJSON(w *jwriter.Writer) {
	w.String(strconv.FormatFloat(float64(n), 'f', -1, 64))
}

// Flag is a boolean the service transmits as a single letter
// ("Y"/"N" or "T"/"F"). See ParseFlag. Strings, booleans and null are
// accepted; any other JSON value is a decode error.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	v, err := unmarshalFlag(b)
	if err != nil {
		return err
	}
	*f = Flag(v)
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.letter())
}

func (f *Flag) UnmarshalEasyJSON(l *jlexer.Lexer) {
	if !l.Ok() {
		return
	}
	v, err := unmarshalFlag(l.Raw())
	if err != nil {
		l.AddError(err)
		return
	}
	*f = Flag(v)
}

func (f Flag) MarshalEasyJSON(w *jwriter.Writer) {
	w.String(f.letter())
}

func (f Flag) letter() string {
	if f {
		return "Y"
	}
	return "N"
}

func (f Flag) String() string {
	return fmt.Sprint(bool(f))
}
