package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/aqa/aqalex"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case aqalex.TokenKind:
		return starlark.String(v.String())

	case aqalex.Token:
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("kind"), starlark.String(v.Kind.String()))
		d.SetKey(starlark.String("text"), starlark.String(v.Text))
		d.SetKey(starlark.String("offset"), starlark.MakeInt(v.Offset))
		d.SetKey(starlark.String("length"), starlark.MakeInt(v.Length))
		return d

	case []aqalex.Token:
		elems := make([]starlark.Value, len(v))
		for i, token := range v {
			elems[i] = toStarlarkValue(token)
		}
		return starlark.NewList(elems)

	case *aqalex.Source:
		if v == nil {
			return starlark.None
		}
		return starlark.String(v.Content)

	case error:
		return starlark.String(v.Error())

	case []byte:
		return starlark.Bytes(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		n := value.NumField()
		d := starlark.NewDict(n)
		typ := value.Type()
		for i := range n {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
