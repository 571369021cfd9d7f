package parametly

import (
	"math/big"
	"reflect"
	"time"
)

type (
	//DateOnly is an instant carrying only a calendar date
	DateOnly time.Time
	//TimeOnly is an instant carrying only a time of day
	TimeOnly time.Time
	//Timestamp is a point in time with fractional seconds
	Timestamp time.Time
)

// Time returns the underlying instant.
func (d DateOnly) Time() time.Time { return time.Time(d) }

// Time returns the underlying instant.
func (t TimeOnly) Time() time.Time { return time.Time(t) }

// Time returns the underlying instant.
func (t Timestamp) Time() time.Time { return time.Time(t) }

var (
	timeType      = reflect.TypeOf(time.Time{})
	dateOnlyType  = reflect.TypeOf(DateOnly{})
	timeOnlyType  = reflect.TypeOf(TimeOnly{})
	timestampType = reflect.TypeOf(Timestamp{})
	bigIntType    = reflect.TypeOf(&big.Int{})
	bigFloatType  = reflect.TypeOf(&big.Float{})
)

func isDateType(t reflect.Type) bool {
	switch t {
	case timeType, dateOnlyType, timeOnlyType, timestampType:
		return true
	}
	return false
}

// wrapDate narrows a parsed instant into the declared date/time representation.
func wrapDate(targetType reflect.Type, ts time.Time) interface{} {
	switch targetType {
	case dateOnlyType:
		return DateOnly(ts)
	case timeOnlyType:
		return TimeOnly(ts)
	case timestampType:
		return Timestamp(ts)
	}
	return ts
}
