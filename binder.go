package parametly

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

// Binder writes coerced parameter values into a destination struct so a
// downstream engine can work with typed fields directly. Field matching is
// case insensitive; a format tag name overrides the field name.
type Binder struct {
	rType  reflect.Type
	fields map[string]*xunsafe.Field
}

// NewBinder creates a binder for the supplied struct type.
func NewBinder(rType reflect.Type) (*Binder, error) {
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type but had %s", rType)
	}
	xStruct := xunsafe.NewStruct(rType)
	ret := &Binder{rType: rType, fields: map[string]*xunsafe.Field{}}
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		name := field.Name
		if tag, _ := format.Parse(field.Tag); tag != nil {
			if tag.Ignore {
				continue
			}
			if tag.Name != "" {
				name = tag.Name
			}
		}
		ret.fields[strings.ToLower(name)] = field
	}
	return ret, nil
}

// Bind copies values into dest, which has to be a pointer to the binder
// struct type. Values with no matching field are skipped.
func (b *Binder) Bind(values *Values, dest interface{}) error {
	destType := reflect.TypeOf(dest)
	if destType == nil || destType.Kind() != reflect.Ptr || destType.Elem() != b.rType {
		return fmt.Errorf("expected *%s but had %T", b.rType, dest)
	}
	ptr := xunsafe.AsPointer(dest)
	for _, name := range values.Names() {
		field, ok := b.fields[strings.ToLower(name)]
		if !ok {
			continue
		}
		if err := b.setField(field, ptr, values.Value(name)); err != nil {
			return fmt.Errorf("unable to bind parameter %q: %w", name, err)
		}
	}
	return nil
}

func (b *Binder) setField(field *xunsafe.Field, ptr unsafe.Pointer, value interface{}) error {
	if value == nil {
		return nil
	}
	//date family values unwrap into plain time fields
	switch actual := value.(type) {
	case DateOnly:
		value = time.Time(actual)
	case TimeOnly:
		value = time.Time(actual)
	case Timestamp:
		value = time.Time(actual)
	}
	valueType := reflect.TypeOf(value)
	switch {
	case valueType.AssignableTo(field.Type):
		field.SetValue(ptr, value)
	case valueType.ConvertibleTo(field.Type):
		field.SetValue(ptr, reflect.ValueOf(value).Convert(field.Type).Interface())
	case field.Kind() == reflect.String:
		field.SetString(ptr, stringify(value))
	default:
		return fmt.Errorf("cannot bind %s into %s", valueType, field.Type)
	}
	return nil
}
