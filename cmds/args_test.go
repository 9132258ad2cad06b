package cmds

import (
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeArg(t *testing.T) {
	v, consumed, err := decodeArg(reflect.TypeFor[int8](), []string{"60"})
	if err != nil || !consumed {
		t.Fatal(err)
	}
	if v.Interface() != int8(60) {
		t.Fatalf("got %v", v)
	}

	// out of range for the parameter type
	_, _, err = decodeArg(reflect.TypeFor[int8](), []string{"600"})
	if err == nil || !strings.Contains(err.Error(), "convert 600 to int") {
		t.Fatalf("got %v", err)
	}

	v, consumed, err = decodeArg(reflect.TypeFor[*float64](), nil)
	if err != nil || consumed {
		t.Fatal(err)
	}
	if *v.Interface().(*float64) != 0 {
		t.Fatalf("got %v", v)
	}

	_, _, err = decodeArg(reflect.TypeFor[[]int](), []string{"1"})
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Fatalf("got %v", err)
	}
}

func TestTextUnmarshalerArg(t *testing.T) {
	executor := NewExecutor()
	var level slog.Level
	executor.Define("-level", Func(func(l slog.Level) {
		level = l
	}))
	if err := executor.Execute([]string{"-level", "warn"}); err != nil {
		t.Fatal(err)
	}
	if level != slog.LevelWarn {
		t.Fatalf("got %v", level)
	}
	err := executor.Execute([]string{"-level", "loud"})
	if err == nil || !strings.HasPrefix(err.Error(), "convert loud to slog.Level") {
		t.Fatalf("got %v", err)
	}
}
