package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModules(t *testing.T) {
	for _, c := range []struct {
		module   any
		testingT *testing.T
		mode     Mode
	}{
		{ForProduction(), nil, ModeProduction},
		{ForDevelopment(), nil, ModeDevelopment},
		{ForTest(t), t, ModeDevelopment},
	} {
		dscope.New(c.module).Call(func(
			testingT *testing.T,
			mode Mode,
		) {
			if testingT != c.testingT {
				t.Fatalf("%T: got %v", c.module, testingT)
			}
			if mode != c.mode {
				t.Fatalf("%T: got %v", c.module, mode)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	for mode, expected := range map[Mode]string{
		ModeProduction:  "production",
		ModeDevelopment: "development",
		Mode(42):        "Mode(42)",
	} {
		if str := mode.String(); str != expected {
			t.Fatalf("got %s", str)
		}
	}
}
