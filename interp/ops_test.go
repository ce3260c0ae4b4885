package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psi-lang/psi/object"
)

func TestArithmetic(t *testing.T) {
	for _, tc := range []struct {
		source string
		want   object.Object
	}{
		{"2 3 add", object.Integer(5)},
		{"2.0 3 add", object.Real(5)},
		{"7 2 sub", object.Integer(5)},
		{"3 4 mul", object.Integer(12)},
		{"7 2 div", object.Real(3.5)},
		{"7 2 idiv", object.Integer(3)},
		{"-7 2 idiv", object.Integer(-3)},
		{"7 2 mod", object.Integer(1)},
		{"-7 2 mod", object.Integer(-1)},
		{"5 neg", object.Integer(-5)},
		{"-5 abs", object.Integer(5)},
		{"2.3 ceiling", object.Real(3)},
		{"2.7 floor", object.Real(2)},
		{"2.5 round", object.Real(3)},
		{"2.7 truncate", object.Real(2)},
		{"9 sqrt", object.Real(3)},
	} {
		t.Run(tc.source, func(t *testing.T) {
			require.Equal(t, []object.Object{tc.want}, runStack(t, tc.source))
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	for _, source := range []string{"1 0 div", "1 0 idiv", "1 0 mod", "-1 sqrt"} {
		ip := New()
		require.Error(t, ip.Run(source), "source: %s", source)
	}
}

func TestStackOps(t *testing.T) {
	for _, tc := range []struct {
		source string
		want   []object.Object
	}{
		{"1 2 exch", []object.Object{object.Integer(2), object.Integer(1)}},
		{"1 2 3 pop", []object.Object{object.Integer(1), object.Integer(2)}},
		{"1 2 3 2 copy", []object.Object{
			object.Integer(1), object.Integer(2), object.Integer(3),
			object.Integer(2), object.Integer(3)}},
		{"1 2 3 1 index", []object.Object{object.Integer(1), object.Integer(2), object.Integer(3), object.Integer(2)}},
		{"1 2 3 count", []object.Object{object.Integer(1), object.Integer(2), object.Integer(3), object.Integer(3)}},
		{"mark 1 2 cleartomark", []object.Object{}},
	} {
		t.Run(tc.source, func(t *testing.T) {
			require.Equal(t, tc.want, runStack(t, tc.source))
		})
	}
}

func TestBooleanOps(t *testing.T) {
	for _, tc := range []struct {
		source string
		want   object.Object
	}{
		{"true false and", object.Boolean(false)},
		{"true false or", object.Boolean(true)},
		{"true not", object.Boolean(false)},
		{"true false xor", object.Boolean(true)},
		{"6 3 and", object.Integer(2)},
		{"6 3 or", object.Integer(7)},
		{"6 3 xor", object.Integer(5)},
	} {
		t.Run(tc.source, func(t *testing.T) {
			require.Equal(t, []object.Object{tc.want}, runStack(t, tc.source))
		})
	}
}

func TestBooleanTypeMismatch(t *testing.T) {
	ip := New()
	require.Error(t, ip.Run("true 1 and"))
}

func TestComparisonOps(t *testing.T) {
	for _, tc := range []struct {
		source string
		want   object.Object
	}{
		{"1 1 eq", object.Boolean(true)},
		{"1 2 ne", object.Boolean(true)},
		{"1 2 lt", object.Boolean(true)},
		{"2 1 gt", object.Boolean(true)},
		{"1 1 le", object.Boolean(true)},
		{"1 1 ge", object.Boolean(true)},
		{"1 1.0 eq", object.Boolean(true)},
		{"(abc) (abd) lt", object.Boolean(true)},
	} {
		t.Run(tc.source, func(t *testing.T) {
			require.Equal(t, []object.Object{tc.want}, runStack(t, tc.source))
		})
	}
}

func TestDictOps(t *testing.T) {
	stack := runStack(t, "/x 42 def x")
	require.Equal(t, []object.Object{object.Integer(42)}, stack)
}

func TestStoreFindsEnclosingScope(t *testing.T) {
	stack := runStack(t, `
		/x 1 def
		1 dict begin
			/x 2 store
		end
		x
	`)
	require.Equal(t, []object.Object{object.Integer(2)}, stack)
}

func TestLoadUndefined(t *testing.T) {
	ip := New()
	require.Error(t, ip.Run("/nope load"))
}

func TestTypeOperator(t *testing.T) {
	for _, tc := range []struct {
		source string
		want   string
	}{
		{"1 type", "integertype"},
		{"1.0 type", "realtype"},
		{"true type", "booleantype"},
		{"(s) type", "stringtype"},
		{"[1] type", "arraytype"},
		{"{1} type", "arraytype"},
		{"0 dict type", "dicttype"},
		{"/x type", "nametype"},
		{"mark type", "marktype"},
	} {
		t.Run(tc.source, func(t *testing.T) {
			stack := runStack(t, tc.source)
			require.Len(t, stack, 1)
			require.Equal(t, object.NewString(tc.want), stack[0])
		})
	}
}

func TestForallArray(t *testing.T) {
	stack := runStack(t, "0 [1 2 3] { add } forall")
	require.Equal(t, []object.Object{object.Integer(6)}, stack)
}

func TestForallString(t *testing.T) {
	stack := runStack(t, "0 (AB) { add } forall")
	require.Equal(t, []object.Object{object.Integer('A' + 'B')}, stack)
}

func TestForallExit(t *testing.T) {
	// item 1 runs to completion (accumulator 0+1=1); item 2 trips the exit
	// before its "add" runs, leaving the duplicated 2 on the stack above it.
	stack := runStack(t, "0 [1 2 3 4] { dup 2 eq { exit } if add } forall")
	require.Equal(t, []object.Object{object.Integer(1), object.Integer(2)}, stack)
}

func TestStringConstructorAndGet(t *testing.T) {
	stack := runStack(t, "3 string dup 0 65 put 0 get")
	require.Equal(t, []object.Object{object.Integer(65)}, stack)
}

func TestCvsFormatsNumber(t *testing.T) {
	ip := New()
	require.NoError(t, ip.Run("42 10 string cvs"))
	stack := ip.GetStack()
	require.Len(t, stack, 1)
	s, ok := stack[0].(*object.String)
	require.True(t, ok)
	require.Equal(t, "42", string(s.Bytes))
}

func TestPutintervalCopiesRange(t *testing.T) {
	ip := New()
	require.NoError(t, ip.Run("[0 0 0 0] dup 1 [1 2] putinterval"))
	stack := ip.GetStack()
	arr := stack[0].(*object.Array)
	require.Equal(t, []object.Object{
		object.Integer(0), object.Integer(1), object.Integer(2), object.Integer(0),
	}, arr.Items)
}
