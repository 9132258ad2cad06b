package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/enu/sessions"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
}
