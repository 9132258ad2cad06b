package debugs

import (
	"testing"

	"github.com/reusee/enu/enulang"
	"github.com/reusee/enu/numerals"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    numerals.Value
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"integer", numerals.Integer(42), starlark.MakeInt64(42)},
		{"float", numerals.Float(2.5), starlark.Float(2.5)},
		{"sexagesimal", numerals.Sexagesimal{Integer: 1, Fraction: 30, HasFraction: true}, starlark.Float(1.5)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := toStarlarkValue(tc.input)
			eq, err := starlark.Equal(got, tc.expected)
			if err != nil {
				t.Fatal(err)
			}
			if !eq {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestEnvGlobals(t *testing.T) {
	env := enulang.NewEnv()
	if _, err := enulang.Exec("x = 1;30", env); err != nil {
		t.Fatal(err)
	}
	globals := envGlobals(env)
	if eq, _ := starlark.Equal(globals["x"], starlark.Float(1.5)); !eq {
		t.Fatalf("got %v", globals["x"])
	}

	thread := &starlark.Thread{Name: "test"}
	res, err := starlark.Call(thread, globals["enu"], starlark.Tuple{starlark.String("y = x * 2")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if str, ok := starlark.AsString(res); !ok || str != "3" {
		t.Fatalf("got %v", res)
	}
	if v, ok := env.Get("y"); !ok || v.String() != "3" {
		t.Fatalf("got %v", v)
	}
}
