package enulang

import (
	"slices"

	"github.com/reusee/enu/numerals"
	"github.com/samber/lo"
)

// Env maps variable names to values. It is only mutated by assignments.
type Env struct {
	vars map[string]numerals.Value
}

func NewEnv() *Env {
	return &Env{
		vars: make(map[string]numerals.Value),
	}
}

func (e *Env) Get(name string) (numerals.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Env) Set(name string, value numerals.Value) {
	e.vars[name] = value
}

func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	names := lo.Keys(e.vars)
	slices.Sort(names)
	return names
}
