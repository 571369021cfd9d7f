package parametly

import (
	"strconv"
	"time"

	dtime "github.com/viant/parametly/format/time"
)

const (
	//naiveLayout matches yyyy-MM-dd'T'HH:mm:ss.SSS with no zone designator
	naiveLayout = "2006-01-02T15:04:05.000"
	//offsetLayout matches yyyy-MM-dd'T'HH:mm:ss.SSSZ with an RFC822 zone offset
	offsetLayout = "2006-01-02T15:04:05.000-0700"
	dateLayout   = "2006-01-02"
)

// parseDate resolves date/time text into an instant, trying the strict
// timezone aware parse, then the legacy epoch millisecond encoding, then a
// bare date. Each strategy failure falls through to the next; only full
// exhaustion surfaces an error.
func parseDate(declaration *Declaration, text string) (time.Time, error) {
	strategies := []func() (time.Time, error){
		func() (time.Time, error) {
			return parseDateStrict(declaration, text)
		},
		func() (time.Time, error) {
			return parseEpochMillis(text)
		},
		func() (time.Time, error) {
			return time.ParseInLocation(dateLayout, text, time.Local)
		},
	}
	for _, strategy := range strategies {
		if ret, err := strategy(); err == nil {
			return ret, nil
		}
	}
	return time.Time{}, &DateParseError{Text: text}
}

// parseDateStrict applies the declaration timezone spec to a strict
// yyyy-MM-dd'T'HH:mm:ss.SSS parse.
func parseDateStrict(declaration *Declaration, text string) (time.Time, error) {
	switch spec := declaration.Timezone(); spec {
	case TimezoneServer:
		return time.ParseInLocation(naiveLayout, text, time.Local)
	case TimezoneUTC:
		return time.ParseInLocation(naiveLayout, text, time.UTC)
	case TimezoneClient:
		if dtime.IsDateOnlyFormat(declaration.DataFormat()) {
			//with no time component declared, a date only parse keeps the
			//calendar day stable across client/server offsets
			return time.ParseInLocation(dateLayout, text, time.Local)
		}
		if ret, err := time.Parse(offsetLayout, text); err == nil {
			return ret, nil
		}
		return time.ParseInLocation(naiveLayout, text, time.Local)
	default:
		loc, err := time.LoadLocation(spec)
		if err != nil {
			//an unrecognized zone id degrades to UTC, long standing behavior
			//of the timezone attribute
			loc = time.UTC
		}
		return time.ParseInLocation(naiveLayout, text, loc)
	}
}

// parseEpochMillis parses the legacy numeric date encoding.
func parseEpochMillis(text string) (time.Time, error) {
	millis, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(millis), nil
}
