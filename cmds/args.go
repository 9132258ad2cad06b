package cmds

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/enu/vars"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// decodeArg converts args[0] to t. Pointer parameters are optional and decode
// to a pointer to zero when args is empty.
func decodeArg(t reflect.Type, args []string) (ret reflect.Value, consumed bool, err error) {
	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			return reflect.New(t.Elem()), false, nil
		}
		return ret, false, fmt.Errorf("expecting argument, got nothing")
	}
	str := args[0]

	if t.Kind() == reflect.Pointer {
		ptr := reflect.New(t.Elem())
		if err := setArg(ptr.Elem(), str); err != nil {
			return ret, false, err
		}
		return ptr, true, nil
	}

	ret = reflect.New(t).Elem()
	if err := setArg(ret, str); err != nil {
		return ret, false, err
	}
	return ret, true, nil
}

func setArg(v reflect.Value, str string) error {
	if reflect.PointerTo(v.Type()).Implements(textUnmarshalerType) {
		if err := v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str)); err != nil {
			return fmt.Errorf("convert %s to %v: %w", str, v.Type(), err)
		}
		return nil
	}

	switch v.Kind() {

	case reflect.Bool:
		v.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(str, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("convert %s to int: %w", str, err)
		}
		v.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(str, 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		v.SetUint(u)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("convert %s to float: %w", str, err)
		}
		v.SetFloat(f)

	case reflect.String:
		v.SetString(str)

	default:
		return fmt.Errorf("unsupported type: %v", v.Type())

	}
	return nil
}
