package parametly

import (
	"fmt"
	"reflect"
)

// computeValue decides between single and multi valued handling before
// delegating to convertValue.
func (a *Applier) computeValue(declaration *Declaration, rawValue interface{}) (interface{}, error) {
	if rawValue == nil {
		//there are still buggy schema definitions out there
		return nil, nil
	}
	rawKind := reflect.TypeOf(rawValue).Kind()
	isMultiValued := rawKind == reflect.Slice || rawKind == reflect.Array
	switch {
	case isMultiValued:
		//multi select and plain slice input share the element wise path
		return a.convertElements(declaration, rawValue)
	case declaration.AllowMultiSelect:
		//a single selection on a multi select parameter still yields a slice
		return a.computeValue(declaration, []interface{}{rawValue})
	}
	return a.convertValue(declaration, declaration.Type, rawValue)
}

// convertElements converts every element independently, preserving order, and
// assembles a slice typed with the declaration element type.
func (a *Applier) convertElements(declaration *Declaration, rawValue interface{}) (interface{}, error) {
	componentType := declaration.ElemType()
	if componentType == nil {
		return nil, &SchemaError{Parameter: declaration.Name, Message: "declared value type was missing"}
	}
	source := reflect.ValueOf(rawValue)
	length := source.Len()
	result := reflect.MakeSlice(reflect.SliceOf(componentType), length, length)
	for i := 0; i < length; i++ {
		converted, err := a.convertValue(declaration, componentType, source.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		if converted == nil {
			//empty element text coerces to the component zero value
			continue
		}
		value := reflect.ValueOf(converted)
		if !value.Type().AssignableTo(componentType) {
			if !value.Type().ConvertibleTo(componentType) {
				return nil, &ConversionError{
					Parameter: declaration.Name,
					Text:      stringify(converted),
					Err:       fmt.Errorf("cannot use %s as %s", value.Type(), componentType),
				}
			}
			value = value.Convert(componentType)
		}
		result.Index(i).Set(value)
	}
	return result.Interface(), nil
}
