package parametly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("zone database unavailable: %v", err)
	}

	testCases := []struct {
		name        string
		declaration *Declaration
		input       string
		expected    time.Time
		hasError    bool
	}{
		{
			name:        "server timezone, naive local",
			declaration: &Declaration{Name: "d"},
			input:       "2024-07-20T10:15:00.000",
			expected:    time.Date(2024, 7, 20, 10, 15, 0, 0, time.Local),
		},
		{
			name:        "utc timezone",
			declaration: &Declaration{Name: "d", Attributes: map[string]string{AttrTimezone: TimezoneUTC}},
			input:       "2024-07-20T10:15:00.000",
			expected:    time.Date(2024, 7, 20, 10, 15, 0, 0, time.UTC),
		},
		{
			name: "client with date only format",
			declaration: &Declaration{Name: "d", Attributes: map[string]string{
				AttrTimezone:   TimezoneClient,
				AttrDataFormat: "yyyy-MM-dd",
			}},
			input:    "2024-07-20",
			expected: time.Date(2024, 7, 20, 0, 0, 0, 0, time.Local),
		},
		{
			name:        "client with offset",
			declaration: &Declaration{Name: "d", Attributes: map[string]string{AttrTimezone: TimezoneClient}},
			input:       "2024-07-20T10:15:00.000+0200",
			expected:    time.Date(2024, 7, 20, 8, 15, 0, 0, time.UTC),
		},
		{
			name:        "client without offset degrades to naive",
			declaration: &Declaration{Name: "d", Attributes: map[string]string{AttrTimezone: TimezoneClient}},
			input:       "2024-07-20T10:15:00.000",
			expected:    time.Date(2024, 7, 20, 10, 15, 0, 0, time.Local),
		},
		{
			name:        "named zone",
			declaration: &Declaration{Name: "d", Attributes: map[string]string{AttrTimezone: "America/New_York"}},
			input:       "2024-07-20T10:15:00.000",
			expected:    time.Date(2024, 7, 20, 10, 15, 0, 0, newYork),
		},
		{
			name:        "unknown zone degrades to utc",
			declaration: &Declaration{Name: "d", Attributes: map[string]string{AttrTimezone: "Not/AZone"}},
			input:       "2024-07-20T10:15:00.000",
			expected:    time.Date(2024, 7, 20, 10, 15, 0, 0, time.UTC),
		},
		{
			name:        "legacy epoch milliseconds",
			declaration: &Declaration{Name: "d"},
			input:       "1700000000000",
			expected:    time.UnixMilli(1700000000000),
		},
		{
			name:        "bare date fallback",
			declaration: &Declaration{Name: "d", Attributes: map[string]string{AttrTimezone: TimezoneUTC}},
			input:       "2024-07-20",
			expected:    time.Date(2024, 7, 20, 0, 0, 0, 0, time.Local),
		},
		{
			name:        "exhausted",
			declaration: &Declaration{Name: "d"},
			input:       "not a date",
			hasError:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := parseDate(tc.declaration, tc.input)
			if tc.hasError {
				assert.NotNil(t, err, tc.name)
				dateErr := &DateParseError{}
				assert.ErrorAs(t, err, &dateErr)
				return
			}
			assert.Nil(t, err, tc.name)
			assert.True(t, tc.expected.Equal(actual), "%v: expected %v but had %v", tc.name, tc.expected, actual)
		})
	}
}

func TestParseDate_dateOnlyKeepsCalendarDay(t *testing.T) {
	declaration := &Declaration{Name: "d", Attributes: map[string]string{
		AttrTimezone:   TimezoneClient,
		AttrDataFormat: "yyyy-MM-dd",
	}}
	actual, err := parseDate(declaration, "2024-07-20")
	assert.Nil(t, err)
	year, month, day := actual.Date()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.July, month)
	assert.Equal(t, 20, day)
	assert.Equal(t, 0, actual.Hour())
}
