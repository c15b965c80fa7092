package binding

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/oapi-codegen/runtime"
)

// Parameter locations.
const (
	InQuery = "query"
	InPath  = "path"
)

// ErrNotStruct is returned when the parameter holder is not a struct.
var ErrNotStruct = errors.New("binding: parameters must be declared on a struct")

// Parameter is the metadata of one bound request parameter.
type Parameter struct {
	Name        string
	In          string
	Description string
	Required    bool
	// Default holds the declared default converted to the field type, or nil.
	Default any
	Minimum *float64
	Maximum *float64
	Type    reflect.Type

	index []int
}

// Describe reflects over the tagged fields of v, which may be a struct, a
// pointer to one, or a reflect.Type. A nil v describes no parameters.
func Describe(v any) ([]Parameter, error) {
	if v == nil {
		return nil, nil
	}

	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, t)
	}

	params := make([]Parameter, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		param, ok, err := describeField(field)
		if err != nil {
			return nil, fmt.Errorf("binding: field %s.%s: %w", t.Name(), field.Name, err)
		}
		if ok {
			params = append(params, param)
		}
	}
	return params, nil
}

func describeField(field reflect.StructField) (Parameter, bool, error) {
	param := Parameter{
		Description: field.Tag.Get("description"),
		Type:        field.Type,
		index:       field.Index,
	}

	if name, ok := field.Tag.Lookup(InPath); ok {
		param.Name, param.In, param.Required = name, InPath, true
	} else if name, ok := field.Tag.Lookup(InQuery); ok {
		param.Name, param.In = name, InQuery
	} else {
		return Parameter{}, false, nil
	}
	if param.Name == "" {
		return Parameter{}, false, errors.New("empty parameter name")
	}

	if raw, ok := field.Tag.Lookup("required"); ok && param.In != InPath {
		required, err := strconv.ParseBool(raw)
		if err != nil {
			return Parameter{}, false, fmt.Errorf("required tag: %w", err)
		}
		param.Required = required
	}

	if raw, ok := field.Tag.Lookup("default"); ok {
		def, err := convert(raw, field.Type)
		if err != nil {
			return Parameter{}, false, fmt.Errorf("default tag: %w", err)
		}
		param.Default = def
	}

	var err error
	if param.Minimum, err = floatTag(field, "minimum"); err != nil {
		return Parameter{}, false, err
	}
	if param.Maximum, err = floatTag(field, "maximum"); err != nil {
		return Parameter{}, false, err
	}

	return param, true, nil
}

func floatTag(field reflect.StructField, key string) (*float64, error) {
	raw, ok := field.Tag.Lookup(key)
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s tag: %w", key, err)
	}
	return &f, nil
}

func convert(raw string, t reflect.Type) (any, error) {
	ptr := reflect.New(t)
	if err := runtime.BindStringToObject(raw, ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}
