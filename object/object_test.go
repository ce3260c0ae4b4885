package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeNames(t *testing.T) {
	for _, tc := range []struct {
		obj  Object
		want string
	}{
		{Integer(1), "integertype"},
		{Real(1.5), "realtype"},
		{Boolean(true), "booleantype"},
		{LiteralName("x"), "nametype"},
		{ExecutableName("x"), "nametype"},
		{Mark{}, "marktype"},
		{Null{}, "nulltype"},
		{NewString("x"), "stringtype"},
		{&Array{}, "arraytype"},
		{&Procedure{}, "arraytype"},
		{NewDict(0), "dicttype"},
		{&Operator{Name: "add"}, "operatortype"},
	} {
		require.Equal(t, tc.want, tc.obj.TypeName())
	}
}

func TestReal_Short(t *testing.T) {
	for _, tc := range []struct {
		r    Real
		want string
	}{
		{Real(2), "2.0"},
		{Real(2.5), "2.5"},
		{Real(-3), "-3.0"},
	} {
		require.Equal(t, tc.want, tc.r.Short())
	}
}

func TestArray_NewArrayFillsNull(t *testing.T) {
	a := NewArray(3)
	require.Len(t, a.Items, 3)
	for _, it := range a.Items {
		require.Equal(t, Null{}, it)
	}
}

func TestDict_OrderAndLookup(t *testing.T) {
	d := NewDict(0)
	d.Set("b", Integer(2))
	d.Set("a", Integer(1))
	d.Set("b", Integer(20)) // re-set shouldn't move order

	var order []string
	d.ForEach(func(key string, value Object) { order = append(order, key) })
	require.Equal(t, []string{"b", "a"}, order)

	v, ok := d.Get("b")
	require.True(t, ok)
	require.Equal(t, Integer(20), v)

	_, ok = d.Get("missing")
	require.False(t, ok)
}

func TestIsNumber(t *testing.T) {
	require.True(t, IsNumber(Integer(1)))
	require.True(t, IsNumber(Real(1)))
	require.False(t, IsNumber(Boolean(true)))
	require.False(t, IsNumber(NewString("1")))
}

func TestIdentityEqual(t *testing.T) {
	a := NewString("x")
	b := NewString("x")
	require.True(t, IdentityEqual(a, a))
	require.False(t, IdentityEqual(a, b), "distinct String objects with equal content are not identity-equal")

	require.True(t, IdentityEqual(Integer(1), Integer(1)))
}
