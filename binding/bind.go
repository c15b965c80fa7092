package binding

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/oapi-codegen/runtime"
)

var (
	// ErrMissingParameter reports an absent required parameter.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrInvalidParameter reports a value that could not be converted.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Bind populates dst, a pointer to a tagged struct, from r. Absent optional
// parameters take their declared default.
func Bind(r *http.Request, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrNotStruct, dst)
	}

	params, err := Describe(dst)
	if err != nil {
		return err
	}

	query := r.URL.Query()
	target := rv.Elem()
	for _, param := range params {
		field := target.FieldByIndex(param.index)

		var raw string
		var present bool
		switch param.In {
		case InPath:
			raw = r.PathValue(param.Name)
			present = raw != ""
		default:
			_, present = query[param.Name]
		}

		if !present {
			if param.Required {
				return fmt.Errorf("%w %q", ErrMissingParameter, param.Name)
			}
			if param.Default != nil {
				field.Set(reflect.ValueOf(param.Default))
			}
			continue
		}

		dest := field.Addr().Interface()
		if param.In == InPath {
			err = runtime.BindStyledParameterWithLocation("simple", false, param.Name, runtime.ParamLocationPath, raw, dest)
		} else {
			err = runtime.BindQueryParameter("form", true, true, param.Name, query, dest)
		}
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidParameter, param.Name, err)
		}
	}
	return nil
}
