package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/enu/debugs"
	"github.com/reusee/enu/enuconfigs"
)

type Module struct {
	dscope.Module
	Configs enuconfigs.Module
	Debugs  debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
