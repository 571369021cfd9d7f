package parametly

import (
	"fmt"

	"github.com/francoispqt/gojay"
)

// Inputs is a name keyed raw input mapping, typically decoded from an untyped
// request payload. Inputs are read only to the applier.
type Inputs map[string]interface{}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (i Inputs) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	i[key] = value
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject.
func (i Inputs) NKeys() int {
	return 0
}

// ParseInputs decodes a JSON object payload into raw inputs.
func ParseInputs(data []byte) (Inputs, error) {
	ret := Inputs{}
	if err := gojay.UnmarshalJSONObject(data, ret); err != nil {
		return nil, fmt.Errorf("unable to parse inputs: %w", err)
	}
	return ret, nil
}
