// Package cf binds loosely typed configuration maps (as decoded from YAML) onto structs. Fields are matched by their
// `cf` tag, falling back to the field name.
//
package cf

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Load copies matching keys from data into the struct pointed to by cf. Keys without a matching field are ignored;
// type mismatches are errors.
//
func Load(data map[string]interface{}, cf interface{}) error {
	cfV := reflect.ValueOf(cf)
	if cfV.Kind() != reflect.Ptr || cfV.IsNil() {
		return errors.Errorf("cf type [%T] not a struct pointer", cf)
	}
	cfV = cfV.Elem()
	if cfV.Kind() != reflect.Struct {
		return errors.Errorf("cf type [%s] not struct", cfV.Type())
	}
	for i := 0; i < cfV.NumField(); i++ {
		field := cfV.Field(i)
		if !field.CanSet() {
			continue
		}
		key := keyName(cfV.Type().Field(i))
		v, found := data[key]
		if !found {
			continue
		}
		if err := setField(field, v); err != nil {
			return errors.Wrapf(err, "field '%s'", key)
		}
	}
	return nil
}

func setField(field reflect.Value, v interface{}) error {
	if field.Type() == durationType {
		switch tv := v.(type) {
		case string:
			d, err := time.ParseDuration(tv)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
			return nil
		case int:
			field.SetInt(int64(time.Duration(tv) * time.Millisecond))
			return nil
		}
		return mismatch(field, v)
	}

	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := v.(int)
		if !ok {
			return mismatch(field, v)
		}
		if field.OverflowInt(int64(i)) {
			return errors.Errorf("value [%d] overflows [%s]", i, field.Type())
		}
		field.SetInt(int64(i))

	case reflect.Float32, reflect.Float64:
		switch tv := v.(type) {
		case float64:
			field.SetFloat(tv)
		case int:
			field.SetFloat(float64(tv))
		default:
			return mismatch(field, v)
		}

	case reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			return mismatch(field, v)
		}
		field.SetBool(b)

	case reflect.String:
		s, ok := v.(string)
		if !ok {
			return mismatch(field, v)
		}
		field.SetString(s)

	case reflect.Map:
		m, ok := v.(map[string]interface{})
		if !ok || field.Type() != reflect.TypeOf(m) {
			return mismatch(field, v)
		}
		field.Set(reflect.ValueOf(m))

	default:
		return errors.Errorf("unsupported field type [%s]", field.Type())
	}
	return nil
}

func mismatch(field reflect.Value, v interface{}) error {
	return errors.Errorf("type mismatch, got [%s], expected [%s]", reflect.TypeOf(v), field.Type())
}

// Dump renders the exported fields of cf, one per line, under label.
//
func Dump(label string, cf interface{}) string {
	cfV := reflect.ValueOf(cf)
	if cfV.Kind() == reflect.Ptr {
		cfV = cfV.Elem()
	}
	if cfV.Kind() != reflect.Struct {
		return ""
	}
	out := new(strings.Builder)
	out.WriteString(label + " {\n")
	format := fmt.Sprintf("\t%%-%ds %%v\n", maxKeyLength(cfV))
	for i := 0; i < cfV.NumField(); i++ {
		if cfV.Field(i).CanInterface() {
			_, _ = fmt.Fprintf(out, format, keyName(cfV.Type().Field(i)), cfV.Field(i).Interface())
		}
	}
	out.WriteString("}\n")
	return out.String()
}

func keyName(v reflect.StructField) string {
	if tag := v.Tag.Get("cf"); tag != "" {
		return tag
	}
	return v.Name
}

func maxKeyLength(cfV reflect.Value) int {
	maxKeyLength := 0
	for i := 0; i < cfV.NumField(); i++ {
		if keyLength := len(keyName(cfV.Type().Field(i))); keyLength > maxKeyLength {
			maxKeyLength = keyLength
		}
	}
	return maxKeyLength
}
