package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Result is what every usecase returns: either Data or an error object from
// the http-error package.
type Result struct {
	Data  interface{}
	Error error
}

// ConvertString renders any value as a JSON string for log metadata.
func ConvertString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case error:
		return s.Error()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

func ConvertInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// FormatDuration renders a minute count as "Xh Ym" / "Ym".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

var istLocation = mustLoadIST()

func mustLoadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// IST has no DST transitions, the fixed offset is always correct.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// ISTNow returns the current time in Indian Standard Time. All persisted
// timestamps use IST.
func ISTNow() time.Time {
	return time.Now().In(istLocation)
}

// FormatISTTimestamp renders a timestamp in IST for presentation.
func FormatISTTimestamp(t time.Time) string {
	return t.In(istLocation).Format("2006-01-02 15:04:05 MST")
}
