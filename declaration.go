package parametly

import "reflect"

// Attribute names recognized on a declaration.
const (
	//AttrDataFormat holds a locale aware pattern hint for numeric or date values
	AttrDataFormat = "dataFormat"
	//AttrTimezone controls how naive date/time text is interpreted
	AttrTimezone = "timezone"
)

// Timezone attribute values with reserved meaning; any other non empty value
// is treated as a named zone id.
const (
	TimezoneServer = "server"
	TimezoneUTC    = "utc"
	TimezoneClient = "client"
)

// Declaration describes one expected input: its name, declared value type and
// parameter attributes. Declarations are supplied by a schema provider and are
// immutable for the duration of one Apply call.
type Declaration struct {
	Name string
	//Type is the declared value type: a scalar type or slice of a scalar type
	Type reflect.Type
	//AllowMultiSelect marks list parameters accepting more than one value;
	//single valued declarations keep it false regardless of the input shape
	AllowMultiSelect bool
	Attributes       map[string]string
}

// Attribute returns a named attribute value or empty string.
func (d *Declaration) Attribute(name string) string {
	if len(d.Attributes) == 0 {
		return ""
	}
	return d.Attributes[name]
}

// DataFormat returns the declaration format pattern hint.
func (d *Declaration) DataFormat() string {
	return d.Attribute(AttrDataFormat)
}

// Timezone returns the declaration timezone spec, defaulting to server.
func (d *Declaration) Timezone() string {
	if ret := d.Attribute(AttrTimezone); ret != "" {
		return ret
	}
	return TimezoneServer
}

// ElemType returns the type used for element wise conversion of multi valued
// input: the declared type element for slice declarations, otherwise the
// declared type itself.
func (d *Declaration) ElemType() reflect.Type {
	if d.Type != nil && d.Type.Kind() == reflect.Slice {
		return d.Type.Elem()
	}
	return d.Type
}
