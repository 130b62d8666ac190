package opt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedThing string

func (n namedThing) String() string { return "thing:" + string(n) }

func TestNone(t *testing.T) {
	assert.False(t, None[string]().IsDefined())
	assert.Equal(t, 0, None[int]().Value())
	assert.Nil(t, None[[]interface{}]().Value())
}

func TestSome(t *testing.T) {
	assert.True(t, Some("").IsDefined())
	assert.Equal(t, 1, Some(1).Value())

	// an empty slice is still a defined value
	empty := Some([]interface{}{})
	assert.True(t, empty.IsDefined())
	assert.Len(t, empty.Value(), 0)
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 3, None[int]().OrElse(3))
	assert.Equal(t, 4, Some(4).OrElse(3))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[none]", None[int]().String())
	assert.Equal(t, "5", Some(5).String())
	assert.Equal(t, "thing:x", Some(namedThing("x")).String())
}

func TestUnmarshalJSON(t *testing.T) {
	var s struct {
		Suite Maybe[string] `json:"suite"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"suite":"CalculatorSuite"}`), &s))
	assert.Equal(t, Some("CalculatorSuite"), s.Suite)

	require.NoError(t, json.Unmarshal([]byte(`{"suite":null}`), &s))
	assert.Equal(t, None[string](), s.Suite)

	var m Maybe[int]
	assert.Error(t, m.UnmarshalJSON([]byte(`malformed`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`"not a number"`)))
}
