package parametly

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type reportArgs struct {
	Region  string
	Count   int
	Ratio   float64
	Since   time.Time
	Regions []string
	Total   float64 `format:"name=grandTotal"`
	Skipped string  `format:"ignore=true"`
}

func TestBinder_Bind(t *testing.T) {
	binder, err := NewBinder(reflect.TypeOf(&reportArgs{}))
	if !assert.Nil(t, err) {
		return
	}

	since := time.Date(2024, 7, 20, 10, 15, 0, 0, time.UTC)
	values := NewValues()
	values.Put("region", "emea")
	values.Put("count", 42)
	values.Put("ratio", float32(1.5))
	values.Put("since", Timestamp(since))
	values.Put("regions", []string{"a", "b"})
	values.Put("grandTotal", 1234.5)
	values.Put("unknown", "dropped")

	args := &reportArgs{}
	err = binder.Bind(values, args)
	assert.Nil(t, err)
	assert.Equal(t, "emea", args.Region)
	assert.Equal(t, 42, args.Count)
	assert.Equal(t, 1.5, args.Ratio)
	assert.True(t, since.Equal(args.Since))
	assert.Equal(t, []string{"a", "b"}, args.Regions)
	assert.Equal(t, 1234.5, args.Total)
	assert.Equal(t, "", args.Skipped)
}

func TestBinder_Bind_nilValue(t *testing.T) {
	binder, err := NewBinder(reflect.TypeOf(reportArgs{}))
	if !assert.Nil(t, err) {
		return
	}
	values := NewValues()
	values.Put("region", nil)
	args := &reportArgs{Region: "unchanged"}
	assert.Nil(t, binder.Bind(values, args))
	assert.Equal(t, "unchanged", args.Region)
}

func TestBinder_Bind_typeMismatch(t *testing.T) {
	binder, err := NewBinder(reflect.TypeOf(reportArgs{}))
	if !assert.Nil(t, err) {
		return
	}
	values := NewValues()
	values.Put("count", []string{"not", "an", "int"})
	err = binder.Bind(values, &reportArgs{})
	assert.NotNil(t, err)
}

func TestBinder_Bind_invalidDest(t *testing.T) {
	binder, err := NewBinder(reflect.TypeOf(reportArgs{}))
	if !assert.Nil(t, err) {
		return
	}
	assert.NotNil(t, binder.Bind(NewValues(), reportArgs{}))
	assert.NotNil(t, binder.Bind(NewValues(), nil))
}

func TestNewBinder_nonStruct(t *testing.T) {
	_, err := NewBinder(reflect.TypeOf(0))
	assert.NotNil(t, err)
}
