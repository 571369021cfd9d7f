package time

import (
	"regexp"
	"strings"
)

// Date format tokens (yyyy-MM-dd HH:mm:ss.SSS style) to Go reference layout.
// Longer tokens have to come first, the replacer matches leftmost longest per
// entry order.
var dateFormatToLayoutReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"MM", "01",
	"M", "1",
	"dd", "02",
	"d", "2",
	"HH", "15",
	"hh", "03",
	"h", "3",
	"mm", "04",
	"m", "4",
	"ss", "05",
	"s", "5",
	".SSS", ".000",
	".SS", ".00",
	".S", ".0",
	"SSS", "000",
	"a", "PM",
	"XXX", "-07:00",
	"XX", "-0700",
	"X", "Z0700",
	"Z", "-0700",
)

// DateFormatToTimeLayout converts a date format pattern to a Go time layout.
// Quoted literals (e.g. 'T') are kept verbatim.
func DateFormatToTimeLayout(dateFormat string) string {
	layout := dateFormatToLayoutReplacer.Replace(dateFormat)
	return strings.ReplaceAll(layout, "'", "")
}

var onlyDatePattern = regexp.MustCompile(`^(y{4}|([dM]){2})([-/])(([dM]){2})([-/])(y{4}|([dM]){2})$`)

// IsDateOnlyFormat reports whether a date format pattern consists solely of
// year, month and day tokens with no time component.
func IsDateOnlyFormat(dateFormat string) bool {
	return dateFormat != "" && onlyDatePattern.MatchString(dateFormat)
}
