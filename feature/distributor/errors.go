package distributor

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is the sentinel matched by every *MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed distributor record")

// MalformedRecordError reports a record that is structurally unusable.
type MalformedRecordError struct {
	PartNumber string
	Reason     string
	Err        error
}

// Error implements the error interface
func (e *MalformedRecordError) Error() string {
	pn := e.PartNumber
	if pn == "" {
		pn = "unknown part"
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed distributor record for %s: %s: %v", pn, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed distributor record for %s: %s", pn, e.Reason)
}

// Unwrap implements errors.Unwrap
func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
