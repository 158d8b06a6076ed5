package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

// ParseDimension turns raw query text into a strictly positive integer.
//
// Surrounding whitespace is ignored and decimals are truncated toward zero, so
// "200.9" yields 200. Scientific notation is refused even when numerically
// valid. Blank-but-nonempty input counts as zero and is therefore NonPositive.
func ParseDimension(raw string) (int, error) {
	if raw == "" || strings.ContainsAny(raw, "eE") {
		return 0, &ValidationError{Kind: MissingOrInvalid, Input: raw}
	}

	var n float64
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		if !decimalPattern.MatchString(trimmed) {
			return 0, &ValidationError{Kind: MissingOrInvalid, Input: raw}
		}

		var err error
		n, err = strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, &ValidationError{Kind: MissingOrInvalid, Input: raw}
		}
	}

	truncated := math.Trunc(n)
	if truncated <= 0 {
		return 0, &ValidationError{Kind: NonPositive, Input: raw}
	}

	if truncated > MaxDimension {
		return 0, &ValidationError{Kind: MissingOrInvalid, Input: raw}
	}

	return int(truncated), nil
}

// ParseSize parses width then height, stopping at the first failure, and applies limit through Size.Within.
func ParseSize(rawWidth, rawHeight string, limit int) (Size, error) {
	width, err := ParseDimension(rawWidth)
	if err != nil {
		return Size{}, err
	}

	height, err := ParseDimension(rawHeight)
	if err != nil {
		return Size{}, err
	}

	size := Size{Width: width, Height: height}
	if err := size.Within(limit); err != nil {
		return Size{}, err
	}

	return size, nil
}
