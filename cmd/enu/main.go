package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/enu/cmds"
	"github.com/reusee/enu/modes"
	"github.com/reusee/enu/sessions"
)

var devMode = cmds.Switch("-dev", "development mode, logs at debug level")

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	var mode any = modes.ForProduction()
	if *devMode {
		mode = modes.ForDevelopment()
	}

	var err error
	dscope.New(
		new(Module),
		mode,
	).Call(func(
		newSession sessions.NewSession,
	) {
		err = newSession().Run(ctx)
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
