package html

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedNode reports a node whose map form does not have exactly one
// top-level key. Match with errors.Is.
var ErrMalformedNode = errors.New("malformed node")

// MalformedNodeError carries the offending key set for diagnostics.
type MalformedNodeError struct {
	KeyCount int
	Keys     []string
}

func (e *MalformedNodeError) Error() string {
	if e.KeyCount == 0 {
		return "malformed node: no tag key"
	}
	return fmt.Sprintf("malformed node: expected exactly one tag key, got %d (%s)",
		e.KeyCount, strings.Join(e.Keys, ", "))
}

func (e *MalformedNodeError) Is(target error) bool {
	return target == ErrMalformedNode
}
