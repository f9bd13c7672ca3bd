package unimod

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a lookup miss against the modification catalog.
// Misses are recoverable; callers decide whether to skip or escalate.
type NotFoundError struct {
	Kind  string // what was looked up: "name", "record id", "mass"
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no modification found in Unimod for %s %s", e.Kind, e.Query)
}

// IsNotFound reports whether err is a catalog lookup miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
