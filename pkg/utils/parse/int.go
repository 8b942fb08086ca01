// ABOUTME: Utility functions for parsing integers from strings
// ABOUTME: Provides safe parsing with default values

package parse

import "strconv"

// IntOrZero parses an integer from a string, returning 0 when the string is
// empty or not a number. Use it where absence and zero mean the same thing,
// such as homograph indexes.
func IntOrZero(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
