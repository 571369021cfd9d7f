package parametly

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/parametly/format"
	dtime "github.com/viant/parametly/format/time"
)

// convertValue coerces a scalar raw value into the target type. Strategies
// apply in fixed precedence; a non matching strategy falls through silently,
// only the registry fallback surfaces a terminal error.
func (a *Applier) convertValue(declaration *Declaration, targetType reflect.Type, rawValue interface{}) (interface{}, error) {
	if targetType == nil {
		return nil, &SchemaError{Parameter: declaration.Name, Message: "declared value type was missing"}
	}
	if rawValue == nil {
		return nil, nil
	}
	rawType := reflect.TypeOf(rawValue)
	if rawType.AssignableTo(targetType) {
		return rawValue, nil
	}
	if targetType.Kind() == reflect.Interface && tableModelType.Implements(targetType) {
		if resultSet, ok := rawValue.(ResultSet); ok {
			return NewTableModel(resultSet), nil
		}
	}
	text := stringify(rawValue)
	if text == "" {
		//no converter treats empty text as meaningful input
		return nil, nil
	}
	if isDateType(targetType) {
		if parsed, err := parseDate(declaration, text); err == nil {
			return wrapDate(targetType, parsed), nil
		}
		//fall through, a dataFormat hint may still succeed
	}
	if dataFormat := declaration.DataFormat(); dataFormat != "" {
		if converted, ok := a.convertWithFormat(targetType, dataFormat, text); ok {
			return converted, nil
		}
	}
	if converter := a.registry.Lookup(targetType); converter != nil {
		converted, err := converter(text)
		if err != nil {
			return nil, &ConversionError{Parameter: declaration.Name, Text: text, Err: err}
		}
		return converted, nil
	}
	//unknown target types pass the raw value through unchanged
	return rawValue, nil
}

// convertWithFormat applies the dataFormat pattern hint. The hint is best
// effort: any failure here falls through to the registry fallback.
func (a *Applier) convertWithFormat(targetType reflect.Type, dataFormat, text string) (interface{}, bool) {
	switch {
	case isNumericType(targetType):
		pattern, err := format.ParsePattern(dataFormat)
		if err != nil {
			return nil, false
		}
		parsed, err := pattern.Parse(text, a.symbols)
		if err != nil {
			return nil, false
		}
		canonical, err := a.registry.Text(parsed)
		if err != nil {
			return nil, false
		}
		converted, err := a.registry.Parse(canonical, targetType)
		if err != nil {
			return nil, false
		}
		return converted, true
	case isDateType(targetType):
		layout := dtime.DateFormatToTimeLayout(dataFormat)
		parsed, err := time.ParseInLocation(layout, text, time.Local)
		if err != nil {
			return nil, false
		}
		return wrapDate(targetType, parsed), true
	}
	return nil, false
}

func isNumericType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return t == bigIntType || t == bigFloatType
}

func stringify(value interface{}) string {
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprintf("%v", value)
}
