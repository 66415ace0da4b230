// ABOUTME: BMI engine errors
// ABOUTME: The single failure kind callers need to distinguish

package bmi

import "errors"

// ErrInvalidInput is returned when height or weight is missing or not positive.
var ErrInvalidInput = errors.New("invalid input")
