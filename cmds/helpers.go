package cmds

import (
	"reflect"
	"strings"
)

// Var defines name to set the value, and name+"." to reset it to zero.
func Var[T any](name string, desc string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc).Args(argName[T]()))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn on and "!"+name to turn off.
func Switch(name string, desc string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}

// Collect defines name to append a value, repeatable.
func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc).Args(argName[T]()+"..."))
	return &value
}

func argName[T any]() string {
	t := reflect.TypeFor[T]()
	if name := t.Name(); name != "" {
		return strings.ToLower(name)
	}
	return t.Kind().String()
}
