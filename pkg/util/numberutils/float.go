package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a finite float64, trimming surrounding spaces.
func ToFloat64WithError(str string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: str, Err: strconv.ErrRange}
	}
	return value, nil
}

// ToOptionalFloat64 converts a possibly empty string. An empty or blank string yields nil, no error.
func ToOptionalFloat64(str string) (*float64, error) {
	if strings.TrimSpace(str) == "" {
		return nil, nil
	}
	value, err := ToFloat64WithError(str)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
