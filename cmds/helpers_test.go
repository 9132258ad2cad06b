package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	prompt := Var[string]("TestVar-prompt", "prompt")
	width := Var[int]("TestVar-width", "width")
	GlobalExecutor.MustExecute([]string{
		"TestVar-prompt", "enu> ",
		"TestVar-width", "2",
	})
	if *prompt != "enu> " {
		t.Fatal()
	}
	if *width != 2 {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar-prompt.",
	})
	if *prompt != "" {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	color := Switch("TestSwitch", "color")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if *color != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *color != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect", "numbers")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "1;30",
		"TestCollect", "2,15",
	})
	if str := fmt.Sprintf("%v", *list); str != "[1;30 2,15]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type HistoryFile string
	v := Var[HistoryFile]("TestTypedVar", "history")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "/tmp/enu_history",
	})
	if *v != "/tmp/enu_history" {
		t.Fatal()
	}
}

func TestBoolVar(t *testing.T) {
	v := Var[bool]("TestBoolVar", "banner")
	GlobalExecutor.MustExecute([]string{
		"TestBoolVar", "yes",
	})
	if !*v {
		t.Fatal()
	}
}

func TestArgName(t *testing.T) {
	type HistoryFile string
	if name := argName[HistoryFile](); name != "historyfile" {
		t.Fatalf("got %s", name)
	}
	if name := argName[[]int](); name != "slice" {
		t.Fatalf("got %s", name)
	}
	if name := argName[int](); name != "int" {
		t.Fatalf("got %s", name)
	}
}
