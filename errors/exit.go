package errors

import (
	"errors"
)

var exitCodes = map[Kind]int{
	KindValue:         2,
	KindFormat:        3,
	KindComparison:    3,
	KindNotFound:      4,
	KindInvalidLocale: 5,
}

// ExitCode maps an error returned by a command onto a process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	e := Error{}
	if errors.As(err, &e) {
		if code, ok := exitCodes[e.Kind]; ok {
			return code
		}
	}
	return 1
}
