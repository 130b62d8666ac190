package quicktest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentSetString(t *testing.T) {
	assert.Equal(t, "", InlineData().String())
	assert.Equal(t, "1,2", InlineData(1, 2).String())
	assert.Equal(t, "1,a b,true,<nil>,2.5", InlineData(1, "a b", true, nil, 2.5).String())
}

func TestMethodKindString(t *testing.T) {
	assert.Equal(t, "fact", FactMethod.String())
	assert.Equal(t, "theory", TheoryMethod.String())
	assert.Equal(t, "MethodKind(9)", MethodKind(9).String())
}

func TestMethodDescriptors(t *testing.T) {
	suite := DefaultSuite[counterSuite]("MySuite").
		Fact("Simple", func(*counterSuite, *T) {})
	Theory2(suite, "Typed", func(*counterSuite, *T, int, string) {}, InlineData(1, "a"))
	suite.Theory("Untyped", 3, func(*counterSuite, *T, ArgumentSet) {})

	assert.Equal(t, "MySuite", suite.Name())
	require.NoError(t, suite.Err())

	methods := suite.Methods()
	require.Len(t, methods, 3)

	assert.Equal(t, MethodDescriptor{Name: "Simple", Kind: FactMethod, Arity: 0}, methods[0])
	assert.True(t, methods[0].IsTest())
	assert.False(t, methods[0].IsParameterized())

	assert.Equal(t, MethodDescriptor{Name: "Typed", Kind: TheoryMethod, Arity: 2,
		Data: []ArgumentSet{InlineData(1, "a")}}, methods[1])
	assert.True(t, methods[1].IsTest())
	assert.True(t, methods[1].IsParameterized())

	assert.Equal(t, "Untyped", methods[2].Name)
	assert.Equal(t, 3, methods[2].Arity)
	assert.False(t, methods[2].IsParameterized())

	// the returned descriptors are copies
	methods[1].Data[0] = InlineData(9, "z")
	assert.Equal(t, InlineData(1, "a"), suite.Methods()[1].Data[0])
}

func TestWithInlineDataAppendsInOrder(t *testing.T) {
	suite := DefaultSuite[counterSuite]("MySuite").
		Theory("M", 1, func(*counterSuite, *T, ArgumentSet) {}, InlineData("declared")).
		WithInlineData("M", InlineData("first"), InlineData("second"))

	require.NoError(t, suite.Err())
	assert.Equal(t,
		[]ArgumentSet{InlineData("declared"), InlineData("first"), InlineData("second")},
		suite.Methods()[0].Data)
}

func TestConvertArg(t *testing.T) {
	type celsius float64

	i, err := convertArg[int](InlineData(float64(4)), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	u, err := convertArg[uint8](InlineData(200), 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), u)

	_, err = convertArg[uint8](InlineData(300), 0)
	assert.EqualError(t, err, "argument 1 (300) cannot be represented as uint8")

	_, err = convertArg[uint](InlineData(-1), 0)
	assert.EqualError(t, err, "argument 1 (-1) cannot be represented as uint")

	_, err = convertArg[uint32](InlineData(float64(-2)), 0)
	assert.EqualError(t, err, "argument 1 (-2) cannot be represented as uint32")

	_, err = convertArg[int](InlineData(uint64(math.MaxUint64)), 0)
	assert.EqualError(t, err, "argument 1 (18446744073709551615) cannot be represented as int")

	big, err := convertArg[int64](InlineData(uint64(math.MaxInt64)), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), big)

	c, err := convertArg[celsius](InlineData(21.5), 0)
	require.NoError(t, err)
	assert.Equal(t, celsius(21.5), c)

	s, err := convertArg[string](InlineData("x"), 0)
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	_, err = convertArg[string](InlineData(1, 2), 1)
	assert.EqualError(t, err, "argument 2 has type int, expected string")

	anything, err := convertArg[interface{}](InlineData(nil), 0)
	require.NoError(t, err)
	assert.Nil(t, anything)

	p, err := convertArg[*counterSuite](InlineData(nil), 0)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = convertArg[bool](InlineData(nil), 0)
	assert.EqualError(t, err, "argument 1 is nil, which is not a valid bool")
}
