package envelope

import "fmt"

// Code is the status of a Result.
//
// The set of codes is closed: the only values are CodeSuccess and CodeFail.
// The integer values are part of the wire contract and must never change.
type Code struct {
	value int
}

var (
	CodeSuccess = Code{value: 1}
	CodeFail    = Code{value: 0}
)

// Value returns the integer sent over the wire.
func (c Code) Value() int {
	return c.value
}

func (c Code) String() string {
	if c == CodeSuccess {
		return "SUCCESS"
	}
	return "FAIL"
}

// CodeFromValue maps a wire integer back to a Code.
func CodeFromValue(v int) (Code, error) {
	switch v {
	case CodeSuccess.value:
		return CodeSuccess, nil
	case CodeFail.value:
		return CodeFail, nil
	}
	return CodeFail, fmt.Errorf("invalid result code %d, must be one of 1, 0", v)
}
