package configs

import (
	"strings"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "enu.cue", `prompt: ";> "`),
		writeConfig(t, "enu.cue", `prompt: "ignored> "
banner: true`),
	}, testSchema)

	prompt := First[string](loader, "prompt")
	if prompt != ";> " {
		t.Fatalf("got %v", prompt)
	}

	if !First[bool](loader, "banner") {
		t.Fatal()
	}

	// missing values are zero
	if size := First[int](loader, "history_size"); size != 0 {
		t.Fatalf("got %v", size)
	}

}

func TestAllEmpty(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	for range All[string](loader, "prompt") {
		t.Fatal()
	}
}

func TestFirstBadType(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "enu.cue", `prompt: "> "`),
	}, testSchema)
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("should panic")
		}
		if err, ok := p.(error); !ok || !strings.HasPrefix(err.Error(), "config prompt: ") {
			t.Fatalf("got %v", p)
		}
	}()
	First[int](loader, "prompt")
}
