package dateformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// numericRegex matches strings treated as Unix timestamps.
var numericRegex = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?$`)

// layouts are tried in order for non-numeric strings.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"January 2006",
	"Jan 2006",
}

// Resolve turns input into a point in time. Accepted inputs are Unix
// seconds (any integer type, a float64 with the fraction dropped,
// json.Number or a numeric string), time.Time, *timestamppb.Timestamp,
// and date strings in one of the supported layouts. Anything else yields
// an *InvalidDateError.
func Resolve(input any) (time.Time, error) {
	switch v := input.(type) {
	case nil:
		return time.Time{}, &InvalidDateError{Input: "<nil>"}
	case time.Time:
		if v.IsZero() {
			return time.Time{}, &InvalidDateError{Input: v.String(), Err: errors.New("zero time")}
		}
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, &InvalidDateError{Input: "<nil>"}
		}
		return Resolve(*v)
	case *timestamppb.Timestamp:
		if err := v.CheckValid(); err != nil {
			return time.Time{}, &InvalidDateError{Input: v.String(), Err: err}
		}
		return v.AsTime(), nil
	case int:
		return time.Unix(int64(v), 0), nil
	case int8:
		return time.Unix(int64(v), 0), nil
	case int16:
		return time.Unix(int64(v), 0), nil
	case int32:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	case uint:
		return fromUnsigned(uint64(v))
	case uint8:
		return time.Unix(int64(v), 0), nil
	case uint16:
		return time.Unix(int64(v), 0), nil
	case uint32:
		return time.Unix(int64(v), 0), nil
	case uint64:
		return fromUnsigned(v)
	case float64:
		return fromFloat(v)
	case json.Number:
		return resolveString(v.String())
	case string:
		return resolveString(v)
	case []byte:
		return resolveString(string(v))
	default:
		return time.Time{}, &InvalidDateError{
			Input: fmt.Sprintf("%v", input),
			Err:   fmt.Errorf("unsupported type %T", input),
		}
	}
}

func fromUnsigned(v uint64) (time.Time, error) {
	if v > math.MaxInt64 {
		return time.Time{}, &InvalidDateError{Input: strconv.FormatUint(v, 10), Err: errors.New("timestamp out of range")}
	}
	return time.Unix(int64(v), 0), nil
}

func fromFloat(v float64) (time.Time, error) {
	// 1<<63 is the first float64 past MaxInt64; MinInt64 is exact.
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= 1<<63 || v < math.MinInt64 {
		return time.Time{}, &InvalidDateError{Input: strconv.FormatFloat(v, 'f', -1, 64), Err: errors.New("timestamp out of range")}
	}
	// Fractional seconds are dropped, as an integer cast would.
	return time.Unix(int64(v), 0), nil
}

func resolveString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &InvalidDateError{Input: s, Err: errors.New("empty date")}
	}

	if numericRegex.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(n, 0), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, &InvalidDateError{Input: s, Err: err}
		}
		return fromFloat(f)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &InvalidDateError{Input: s, Err: errors.New("no matching date layout")}
}
