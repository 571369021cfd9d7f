package conv

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"sync"
	"time"
)

// Converter parses canonical text into a value of the registered target type.
type Converter func(text string) (interface{}, error)

// Registry holds text converters keyed by target type. Lookups may run
// concurrently; registration is expected to happen before first use.
type Registry struct {
	converters sync.Map // map[reflect.Type]Converter
}

// New creates a registry pre populated with scalar converters.
func New() *Registry {
	ret := &Registry{}
	ret.Register(reflect.TypeOf(""), func(text string) (interface{}, error) {
		return text, nil
	})
	ret.Register(reflect.TypeOf(true), func(text string) (interface{}, error) {
		return strconv.ParseBool(text)
	})
	ret.Register(reflect.TypeOf(int(0)), intConverter(0, func(v int64) interface{} { return int(v) }))
	ret.Register(reflect.TypeOf(int8(0)), intConverter(8, func(v int64) interface{} { return int8(v) }))
	ret.Register(reflect.TypeOf(int16(0)), intConverter(16, func(v int64) interface{} { return int16(v) }))
	ret.Register(reflect.TypeOf(int32(0)), intConverter(32, func(v int64) interface{} { return int32(v) }))
	ret.Register(reflect.TypeOf(int64(0)), intConverter(64, func(v int64) interface{} { return v }))
	ret.Register(reflect.TypeOf(uint(0)), uintConverter(0, func(v uint64) interface{} { return uint(v) }))
	ret.Register(reflect.TypeOf(uint8(0)), uintConverter(8, func(v uint64) interface{} { return uint8(v) }))
	ret.Register(reflect.TypeOf(uint16(0)), uintConverter(16, func(v uint64) interface{} { return uint16(v) }))
	ret.Register(reflect.TypeOf(uint32(0)), uintConverter(32, func(v uint64) interface{} { return uint32(v) }))
	ret.Register(reflect.TypeOf(uint64(0)), uintConverter(64, func(v uint64) interface{} { return v }))
	ret.Register(reflect.TypeOf(float32(0)), func(text string) (interface{}, error) {
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	})
	ret.Register(reflect.TypeOf(float64(0)), func(text string) (interface{}, error) {
		return strconv.ParseFloat(text, 64)
	})
	ret.Register(reflect.TypeOf(&big.Int{}), func(text string) (interface{}, error) {
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer: %q", text)
		}
		return v, nil
	})
	ret.Register(reflect.TypeOf(&big.Float{}), func(text string) (interface{}, error) {
		v, _, err := big.ParseFloat(text, 10, bigFloatPrecision, big.ToNearestEven)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	ret.Register(reflect.TypeOf(time.Duration(0)), func(text string) (interface{}, error) {
		return time.ParseDuration(text)
	})
	return ret
}

const bigFloatPrecision = 128

func intConverter(bits int, narrow func(int64) interface{}) Converter {
	return func(text string) (interface{}, error) {
		v, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return nil, err
		}
		return narrow(v), nil
	}
}

func uintConverter(bits int, narrow func(uint64) interface{}) Converter {
	return func(text string) (interface{}, error) {
		v, err := strconv.ParseUint(text, 10, bits)
		if err != nil {
			return nil, err
		}
		return narrow(v), nil
	}
}

// Register associates a converter with a target type, replacing any previous one.
func (r *Registry) Register(target reflect.Type, converter Converter) {
	r.converters.Store(target, converter)
}

// Lookup returns a converter for a target type, or nil when none is registered.
func (r *Registry) Lookup(target reflect.Type) Converter {
	v, ok := r.converters.Load(target)
	if !ok {
		return nil
	}
	return v.(Converter)
}

// Parse converts canonical text into a value of the target type.
func (r *Registry) Parse(text string, target reflect.Type) (interface{}, error) {
	converter := r.Lookup(target)
	if converter == nil {
		return nil, fmt.Errorf("no converter for %s", target)
	}
	return converter(text)
}

// Text renders a value into the canonical text form understood by registered
// converters.
func (r *Registry) Text(value interface{}) (string, error) {
	switch actual := value.(type) {
	case string:
		return actual, nil
	case bool:
		return strconv.FormatBool(actual), nil
	case int:
		return strconv.Itoa(actual), nil
	case int8:
		return strconv.FormatInt(int64(actual), 10), nil
	case int16:
		return strconv.FormatInt(int64(actual), 10), nil
	case int32:
		return strconv.FormatInt(int64(actual), 10), nil
	case int64:
		return strconv.FormatInt(actual, 10), nil
	case uint:
		return strconv.FormatUint(uint64(actual), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(actual), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(actual), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(actual), 10), nil
	case uint64:
		return strconv.FormatUint(actual, 10), nil
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), nil
	case *big.Int:
		return actual.String(), nil
	case *big.Float:
		return actual.Text('f', -1), nil
	case time.Time:
		return actual.Format(time.RFC3339Nano), nil
	case fmt.Stringer:
		return actual.String(), nil
	}
	return "", fmt.Errorf("unable to render %T as text", value)
}
