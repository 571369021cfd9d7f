package time

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateFormatToTimeLayout(t *testing.T) {
	testCases := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "timestamp", format: "yyyy-MM-dd'T'HH:mm:ss.SSS", expected: "2006-01-02T15:04:05.000"},
		{name: "timestamp with offset", format: "yyyy-MM-dd'T'HH:mm:ss.SSSZ", expected: "2006-01-02T15:04:05.000-0700"},
		{name: "date", format: "yyyy-MM-dd", expected: "2006-01-02"},
		{name: "slashed date", format: "dd/MM/yyyy", expected: "02/01/2006"},
		{name: "time of day", format: "HH:mm:ss", expected: "15:04:05"},
		{name: "12 hour clock", format: "hh:mm a", expected: "03:04 PM"},
		{name: "two digit year", format: "yy-MM-dd", expected: "06-01-02"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DateFormatToTimeLayout(tc.format), tc.name)
		})
	}
}

func TestIsDateOnlyFormat(t *testing.T) {
	testCases := []struct {
		format   string
		expected bool
	}{
		{format: "yyyy-MM-dd", expected: true},
		{format: "dd/MM/yyyy", expected: true},
		{format: "MM-dd-yyyy", expected: true},
		{format: "yyyy/MM/dd", expected: true},
		{format: "yyyy-MM-dd HH:mm", expected: false},
		{format: "yyyy-MM-dd'T'HH:mm:ss.SSS", expected: false},
		{format: "HH:mm:ss", expected: false},
		{format: "", expected: false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, IsDateOnlyFormat(tc.format), tc.format)
	}
}
