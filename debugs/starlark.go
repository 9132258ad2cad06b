package debugs

import (
	"fmt"

	"github.com/reusee/enu/enulang"
	"github.com/reusee/enu/numerals"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// toStarlarkValue maps integers to starlark ints and the other kinds to their real value.
func toStarlarkValue(v numerals.Value) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case numerals.Integer:
		return starlark.MakeInt64(int64(v))

	case numerals.Float:
		return starlark.Float(v)

	case numerals.Sexagesimal:
		return starlark.Float(v.Real())

	}

	panic(fmt.Errorf("unsupported value for starlark: %T", v))
}

func envGlobals(env *enulang.Env) starlark.StringDict {
	globals := make(starlark.StringDict)
	for _, name := range env.Names() {
		value, _ := env.Get(name)
		globals[name] = toStarlarkValue(value)
	}
	// evaluates an enu expression against the same environment
	globals["enu"] = starlarkutil.MakeFunc("enu", func(src string) string {
		value, err := enulang.Exec(src, env)
		if err != nil {
			return "error: " + err.Error()
		}
		if value == nil {
			return ""
		}
		return value.String()
	})
	return globals
}
