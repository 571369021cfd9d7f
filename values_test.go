package parametly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues(t *testing.T) {
	values := NewValues()
	values.Put("b", 1)
	values.Put("a", 2)
	values.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, values.Names())
	assert.Equal(t, 2, values.Len())
	assert.Equal(t, 3, values.Value("b"))
	_, ok := values.Lookup("missing")
	assert.False(t, ok)
}

func TestValidationResult(t *testing.T) {
	result := NewValidationResult()
	assert.True(t, result.IsEmpty())

	result.AddError("a", "first")
	result.AddError("b", "second")
	result.AddError("a", "third")

	assert.False(t, result.IsEmpty())
	assert.Equal(t, []string{"a", "b"}, result.Names())
	assert.Equal(t, []string{"first", "third"}, result.Errors("a"))
}
