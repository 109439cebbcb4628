package iex

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/mailru/easyjson"
)

// Response is a decoded but untyped service response. It holds any of the
// top-level shapes the service returns (object, array, object keyed by
// symbol) until Convert gives it a type.
//
// A Response can be converted once. Callers that need the payload again
// should keep Bytes before converting.
type Response struct {
	raw json.RawMessage
}

// NewResponse wraps b, which must be well-formed JSON.
func NewResponse(b []byte) (*Response, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		var offset int64
		var se *json.SyntaxError
		if errors.As(err, &se) {
			offset = se.Offset
		}
		return nil, &SyntaxError{Offset: offset, Err: err}
	}
	return &Response{raw: raw}, nil
}

// Bytes returns the payload. It returns nil once the response is consumed.
func (r *Response) Bytes() []byte {
	return r.raw
}

// MarshalJSON implements json.Marshaler.
func (r *Response) MarshalJSON() ([]byte, error) {
	if r.raw == nil {
		return nil, ErrResponseConsumed
	}
	return r.raw, nil
}

// Convert decodes r into a T and consumes r. Types implementing
// easyjson.Unmarshaler are decoded with easyjson.
func Convert[T any](r *Response) (T, error) {
	var v T
	if r == nil || r.raw == nil {
		return v, ErrResponseConsumed
	}
	raw := r.raw
	r.raw = nil

	var err error
	if u, ok := any(&v).(easyjson.Unmarshaler); ok {
		err = easyjson.Unmarshal(raw, u)
	} else {
		err = json.Unmarshal(raw, &v)
	}
	if err != nil {
		de := decodeError(err)
		if de.Field == "" {
			locateField(raw, reflect.TypeOf((*T)(nil)).Elem(), de)
		}
		return v, de
	}
	return v, nil
}

func decodeError(err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return &DecodeError{Field: te.Field, Raw: te.Value, Err: err}
	}
	return &DecodeError{Err: fmt.Errorf("convert: %w", err)}
}

var easyjsonUnmarshaler = reflect.TypeOf((*easyjson.Unmarshaler)(nil)).Elem()

// locateField names the field of a failed easyjson decode. Generated
// decoders report type errors without their key, so raw is decoded again
// into a copy of t whose records have no easyjson methods, which lets
// encoding/json fill in the field path.
func locateField(raw []byte, t reflect.Type, de *DecodeError) {
	p := plainType(t)
	if p == t {
		return
	}
	err := json.Unmarshal(raw, reflect.New(p).Interface())
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		de.Field = te.Field
		if de.Raw == "" {
			de.Raw = te.Value
		}
	}
}

// plainType mirrors t, replacing every struct with easyjson methods by an
// unnamed struct with the same fields and tags.
func plainType(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Pointer:
		if e := plainType(t.Elem()); e != t.Elem() {
			return reflect.PointerTo(e)
		}
	case reflect.Slice:
		if e := plainType(t.Elem()); e != t.Elem() {
			return reflect.SliceOf(e)
		}
	case reflect.Map:
		if e := plainType(t.Elem()); e != t.Elem() {
			return reflect.MapOf(t.Key(), e)
		}
	case reflect.Struct:
		if !reflect.PointerTo(t).Implements(easyjsonUnmarshaler) {
			return t
		}
		fields := make([]reflect.StructField, t.NumField())
		for i := range fields {
			f := t.Field(i)
			if f.Anonymous || !f.IsExported() {
				return t
			}
			f.Type = plainType(f.Type)
			fields[i] = f
		}
		return reflect.StructOf(fields)
	}
	return t
}
