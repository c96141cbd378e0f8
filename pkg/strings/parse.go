package strings

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type SupportedParsingTypes interface {
	bool | int | int64 | uint | float64 | string | time.Time | time.Duration | uuid.UUID
}

var errNegativeUnixTime = errors.New("got negative seconds value")

func ParseTypedValue[T SupportedParsingTypes](value string) (T, error) {
	var (
		result any
		err    error
		blank  T
	)

	switch any(blank).(type) {
	case bool:
		result, err = strconv.ParseBool(value)
	case int:
		result, err = strconv.Atoi(value)
	case int64:
		result, err = strconv.ParseInt(value, 10, 64)
	case uint:
		var u uint64
		u, err = strconv.ParseUint(value, 10, 64)
		result = uint(u)
	case float64:
		result, err = strconv.ParseFloat(value, 64)
	case string:
		result = value
	case time.Time:
		result, err = parseTime(value)
	case time.Duration:
		result, err = time.ParseDuration(value)
	case uuid.UUID:
		result, err = uuid.Parse(value)
	}
	if err != nil {
		return blank, fmt.Errorf("convert to type %T: %w", blank, err)
	}

	return result.(T), nil
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	unixTime, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("RFC3339, RFC3339Nano or Unix time expected: %w", err)
	}
	if unixTime < 0 {
		return time.Time{}, errNegativeUnixTime
	}

	return time.Unix(unixTime, 0), nil
}
