package cmds

import (
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var precision int
	executor.Define("-default-precision", Func(func() {
		precision = 2
	}))
	executor.Define("-precision", Func(func(i int) {
		precision = i
	}))

	if err := executor.Execute([]string{
		"-default-precision",
	}); err != nil {
		t.Fatal(err)
	}
	if precision != 2 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"-precision", "60",
	}); err != nil {
		t.Fatal(err)
	}
	if precision != 60 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"-radix",
	})
	if !strings.Contains(err.Error(), "unknown command: -radix") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-precision", "sixty",
	})
	if !strings.Contains(err.Error(), "convert sixty to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-precision",
	})
	if !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var tokens bool
	var depth int
	executor.Define("debug", Sub(map[string]*Command{
		"tokens": Func(func() {
			tokens = true
		}),
		"depth": Func(func(i int) {
			depth = i
		}),
	}))

	if err := executor.Execute([]string{
		"debug",
		"tokens",
		"depth", "3",
	}); err != nil {
		t.Fatal(err)
	}

	if !tokens {
		t.Fatal()
	}
	if depth != 3 {
		t.Fatal()
	}

	// sub commands are not visible at top level
	err := executor.Execute([]string{"tokens"})
	if err == nil {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("debug", Sub(map[string]*Command{
		"ast": nil,
	}))
	executor.Define("dump", Sub(map[string]*Command{
		"ast": nil,
	}))
	err := executor.Execute([]string{"debug", "dump"})
	if !strings.Contains(err.Error(), "duplicated sub command: dump ast") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-banner", Func(func() {}).Alias("-b"))
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		executor.Define("-b", Func(func() {}))
	}()
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("-sexagesimal", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"-sexagesimal", "60", ";"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 60 {
		t.Fatal()
	}
	if s != ";" {
		t.Fatal()
	}

	err = executor.Execute([]string{"-sexagesimal", "30"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 30 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"-sexagesimal"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestFuncChecks(t *testing.T) {
	for _, fn := range []any{
		42,
		func() (int, error) { return 0, nil },
		func() int { return 0 },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("should panic: %T", fn)
				}
			}()
			Func(fn)
		}()
	}
}

func TestAssignSyntax(t *testing.T) {
	executor := NewExecutor()
	var prompt string
	executor.Define("-prompt", Func(func(s string) {
		prompt = s
	}))
	if err := executor.Execute([]string{"-prompt=a=b>"}); err != nil {
		t.Fatal(err)
	}
	if prompt != "a=b>" {
		t.Fatalf("got %q", prompt)
	}
	err := executor.Execute([]string{"-radix=60"})
	if !strings.Contains(err.Error(), "unknown command: -radix=60") {
		t.Fatalf("got %v", err)
	}
}
