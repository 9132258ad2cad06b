package enuconfigs

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/reusee/enu/cmds"
	"github.com/reusee/enu/configs"
	"github.com/reusee/enu/vars"
)

const DefaultPrompt = "enu> "

type Prompt string

var promptFlag = cmds.Var[string]("-prompt", "REPL prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		DefaultPrompt,
	))
}

// HistoryFile is empty when no history should be kept.
type HistoryFile string

var historyFileFlag = cmds.Var[string]("-history", "history file path")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	var defaultPath string
	if dir, err := os.UserCacheDir(); err == nil {
		defaultPath = filepath.Join(dir, "enu_history")
	}
	return HistoryFile(vars.FirstNonZero(
		*historyFileFlag,
		configs.First[string](loader, "history_file"),
		defaultPath,
	))
}

type Color bool

var (
	colorFlag   = cmds.Switch("-color", "force colored output")
	noColorFlag = cmds.Switch("-no-color", "disable colored output")
)

func (Module) Color(
	loader configs.Loader,
) Color {
	// flag
	if *noColorFlag {
		return false
	}
	if *colorFlag {
		return true
	}
	// config
	if v := configs.First[*bool](loader, "color"); v != nil {
		return Color(*v)
	}
	// terminal and NO_COLOR detection
	return Color(!color.NoColor)
}

type Banner bool

var noBannerFlag = cmds.Switch("-no-banner", "do not print the banner")

func (Module) Banner(
	loader configs.Loader,
) Banner {
	if *noBannerFlag {
		return false
	}
	if v := configs.First[*bool](loader, "banner"); v != nil {
		return Banner(*v)
	}
	return true
}

type DebugTokens bool

var debugTokensFlag = cmds.Switch("-debug-tokens", "print tokens before evaluation")

func (Module) DebugTokens(
	loader configs.Loader,
) DebugTokens {
	return DebugTokens(*debugTokensFlag ||
		vars.DerefOrZero(configs.First[*bool](loader, "debug_tokens")))
}

type DebugAST bool

var debugASTFlag = cmds.Switch("-debug-ast", "print syntax tree before evaluation")

func (Module) DebugAST(
	loader configs.Loader,
) DebugAST {
	return DebugAST(*debugASTFlag ||
		vars.DerefOrZero(configs.First[*bool](loader, "debug_ast")))
}
