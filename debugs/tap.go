package debugs

import (
	"context"

	"github.com/reusee/enu/enulang"
	"github.com/reusee/enu/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with the environment's bindings as globals.
type Tap func(ctx context.Context, what string, env *enulang.Env)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, env *enulang.Env) {
		logger.InfoContext(ctx, "tap: "+what,
			"vars", env.Names(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, envGlobals(env))
	}
}
