package parametly

// Values is a name keyed output sink receiving converted parameter values;
// names preserve the order of first write.
type Values struct {
	names  []string
	values map[string]interface{}
}

// NewValues creates an empty value sink.
func NewValues() *Values {
	return &Values{values: map[string]interface{}{}}
}

// Put stores a value under name, keeping first write order.
func (v *Values) Put(name string, value interface{}) {
	if _, ok := v.values[name]; !ok {
		v.names = append(v.names, name)
	}
	v.values[name] = value
}

// Lookup returns a stored value and whether name was present.
func (v *Values) Lookup(name string) (interface{}, bool) {
	ret, ok := v.values[name]
	return ret, ok
}

// Value returns a stored value or nil.
func (v *Values) Value(name string) interface{} {
	return v.values[name]
}

// Names returns stored names in write order.
func (v *Values) Names() []string {
	return v.names
}

// Len returns the number of stored values.
func (v *Values) Len() int {
	return len(v.names)
}
