package core_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/funvibe/rangen/internal/core"
)

func TestStringTransformerPositional(t *testing.T) {
	testCases := []struct {
		name   string
		format string
		args   []core.Value
		want   string
	}{
		{"auto", "{} is {}", primitives("a", int64(2)), "a is 2"},
		{"explicit", "{1} before {0}", primitives("x", "y"), "y before x"},
		{"repeat", "{0}{0}", primitives("ab"), "abab"},
		{"no_args", "plain", nil, "plain"},
		{"null_arg", "v={}", []core.Value{core.NewNull()}, "v=null"},
		{"float_arg", "{}", primitives(2.5), "2.5"},
		{"brace_literal", "a {not} b", primitives(), "a {not} b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := core.NewStringTransformer(tc.format, tc.args)
			require.NoError(t, err)
			require.NoError(t, v.Next())
			require.Equal(t, tc.want, v.Current())
		})
	}
}

func TestStringTransformerIndexErrors(t *testing.T) {
	var formatErr *core.FormatError

	_, err := core.NewStringTransformer("{}", nil)
	require.ErrorAs(t, err, &formatErr)

	_, err = core.NewStringTransformer("{2}", primitives("a", "b"))
	require.ErrorAs(t, err, &formatErr)
}

func TestStringTransformerDoesNotAdvanceArgs(t *testing.T) {
	c := &counter{}
	v, err := core.NewStringTransformer("n={}", []core.Value{c})
	require.NoError(t, err)

	require.NoError(t, v.Next())
	require.NoError(t, v.Next())
	require.NoError(t, v.Next())
	require.Equal(t, 0, c.n)
	require.Equal(t, "n=0", v.Current())

	// An ancestor advances the argument; the transformer sees the new
	// current on its own next advance.
	require.NoError(t, c.Next())
	require.NoError(t, v.Next())
	require.Equal(t, "n=1", v.Current())
}

func TestJSONTransformerRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		in   any
	}{
		{"long", int64(42)},
		{"double", 2.75},
		{"bool", true},
		{"string", "hello"},
		{"null", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := core.NewJSONTransformer(core.NewPrimitive(tc.in))
			require.NoError(t, v.Next())

			var back any
			require.NoError(t, json.Unmarshal([]byte(v.Current().(string)), &back))
			if tc.in == nil {
				require.Nil(t, back)
				return
			}
			require.EqualValues(t, tc.in, back)
		})
	}
}

func TestTimeFormatTransformer(t *testing.T) {
	date := core.Date{Year: 2021, Month: time.March, Day: 5}

	v, err := core.NewTimeFormatTransformer("yyyy-MM-dd", core.NewPrimitive(date))
	require.NoError(t, err)
	require.NoError(t, v.Next())
	require.Equal(t, "2021-03-05", v.Current())

	at := time.Date(2021, time.March, 5, 13, 7, 9, 0, time.UTC)
	v, err = core.NewTimeFormatTransformer("HH:mm:ss", core.NewPrimitive(at))
	require.NoError(t, err)
	require.NoError(t, v.Next())
	require.Equal(t, "13:07:09", v.Current())
}

func TestTimeFormatTransformerErrors(t *testing.T) {
	var formatErr *core.FormatError

	_, err := core.NewTimeFormatTransformer("yyyy-QQ", core.NewPrimitive("x"))
	require.ErrorAs(t, err, &formatErr)

	v, err := core.NewTimeFormatTransformer("yyyy", core.NewPrimitive("not a time"))
	require.NoError(t, err)
	require.ErrorAs(t, v.Next(), &formatErr)
}

func TestListAdvancesAllChildren(t *testing.T) {
	a, b := &counter{}, &counter{}
	v := core.NewList([]core.Value{a, b})

	require.NoError(t, v.Next())
	require.NoError(t, v.Next())
	require.Equal(t, 2, a.n)
	require.Equal(t, 2, b.n)
	require.Equal(t, []any{2, 2}, v.Current())
}

func TestCompositeSnapshotsInOrder(t *testing.T) {
	a, b := &counter{}, &counter{}
	v := core.NewComposite()
	v.Add("first", a)
	v.Add("second", b)

	require.NoError(t, v.Next())
	require.Equal(t, map[string]any{"first": 1, "second": 1}, v.Current())
}
