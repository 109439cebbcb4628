package iex

import (
	"encoding/json"
	"testing"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberEmptyIsZero(t *testing.T) {
	i, err := ParseNumber[int64]("f", "")
	require.NoError(t, err)
	assert.Zero(t, i)
	u8, err := ParseNumber[uint8]("f", "")
	require.NoError(t, err)
	assert.Zero(t, u8)
	f, err := ParseNumber[float32]("f", "")
	require.NoError(t, err)
	assert.Zero(t, f)
}

func TestParseNumber(t *testing.T) {
	i, err := ParseNumber[int32]("f", "42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, i)

	n, err := ParseNumber[int]("f", "-7")
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	u, err := ParseNumber[uint64]("f", "18446744073709551615")
	require.NoError(t, err)
	assert.EqualValues(t, uint64(18446744073709551615), u)

	f, err := ParseNumber[float64]("f", "1.25")
	require.NoError(t, err)
	assert.Equal(t, 1.25, f)
}

func TestParseNumberInvalid(t *testing.T) {
	for _, text := range []string{"abc", "1.5x", " 1"} {
		_, err := ParseNumber[int64]("RoundLot", text)
		var de *DecodeError
		require.ErrorAs(t, err, &de, text)
		assert.Equal(t, "RoundLot", de.Field)
		assert.Equal(t, text, de.Raw)
	}

	// negative into unsigned and overflow into small ints
	_, err := ParseNumber[uint32]("f", "-1")
	assert.Error(t, err)
	_, err = ParseNumber[int8]("f", "300")
	assert.Error(t, err)
}

func TestParseFlag(t *testing.T) {
	for _, s := range []string{"N", "F", ""} {
		assert.False(t, ParseFlag(s), s)
	}
	for _, s := range []string{"Y", "T", "anything-else", "n"} {
		assert.True(t, ParseFlag(s), s)
	}
}

func TestStringNumberJSON(t *testing.T) {
	var v struct {
		A StringInt64   `json:"a"`
		B StringUint64  `json:"b"`
		C StringFloat64 `json:"c"`
		D StringUint64  `json:"d"`
		E StringInt64   `json:"e"`
		F StringFloat64 `json:"f"`
	}
	err := json.Unmarshal([]byte(`{"a":"-3","b":"","c":"2.5","d":null,"e":12,"f":0.5}`), &v)
	require.NoError(t, err)
	assert.EqualValues(t, -3, v.A)
	assert.EqualValues(t, 0, v.B)
	assert.EqualValues(t, 2.5, v.C)
	assert.EqualValues(t, 0, v.D)
	assert.EqualValues(t, 12, v.E)
	assert.EqualValues(t, 0.5, v.F)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"-3","b":"0","c":"2.5","d":"0","e":"12","f":"0.5"}`, string(b))
}

func TestStringNumberJSONInvalid(t *testing.T) {
	var v struct {
		IEXID StringUint64 `json:"iexId"`
	}
	err := json.Unmarshal([]byte(`{"iexId":"abc"}`), &v)
	var te *json.UnmarshalTypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "iexId", te.Field)
	assert.Equal(t, "abc", te.Value)
}

func TestFlagJSON(t *testing.T) {
	var v struct {
		A Flag `json:"a"`
		B Flag `json:"b"`
		C Flag `json:"c"`
		D Flag `json:"d"`
		E Flag `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a":"Y","b":"N","c":"","d":true,"e":null}`), &v)
	require.NoError(t, err)
	assert.True(t, bool(v.A))
	assert.False(t, bool(v.B))
	assert.False(t, bool(v.C))
	assert.True(t, bool(v.D))
	assert.False(t, bool(v.E))

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"Y","b":"N","c":"N","d":"Y","e":"N"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
}

func TestCoercionEasyJSON(t *testing.T) {
	var n StringUint64
	l := jlexer.Lexer{Data: []byte(`""`)}
	n.UnmarshalEasyJSON(&l)
	require.NoError(t, l.Error())
	assert.EqualValues(t, 0, n)

	l = jlexer.Lexer{Data: []byte(`"42"`)}
	n.UnmarshalEasyJSON(&l)
	require.NoError(t, l.Error())
	assert.EqualValues(t, 42, n)

	l = jlexer.Lexer{Data: []byte(`"abc"`)}
	n.UnmarshalEasyJSON(&l)
	assert.Error(t, l.Error())

	var f Flag
	l = jlexer.Lexer{Data: []byte(`"T"`)}
	f.UnmarshalEasyJSON(&l)
	require.NoError(t, l.Error())
	assert.True(t, bool(f))

	w := jwriter.Writer{}
	StringFloat64(1.5).MarshalEasyJSON(&w)
	f.MarshalEasyJSON(&w)
	assert.Equal(t, `"1.5""Y"`, string(w.Buffer.BuildBytes()))
}
