// pkg/ldif/errors.go

package ldif

import "fmt"

// ParseError reports LDIF text the grammar codec rejected. The whole parse
// is aborted; no partial records are returned.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse LDIF data: %v", e.Err)
}

// Unwrap returns the originating codec diagnostic.
func (e *ParseError) Unwrap() error { return e.Err }

// EncodeError reports a failure while generating LDIF text.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to generate LDIF: %v", e.Err)
}

// Unwrap returns the originating codec diagnostic.
func (e *EncodeError) Unwrap() error { return e.Err }

// RecordError reports a structurally invalid record handed to ToLDIF. Index
// is the record's position in the batch; Field names the offending attribute
// when one is involved.
type RecordError struct {
	Index  int
	DN     string
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("record %d", e.Index)
	if e.DN != "" {
		msg += fmt.Sprintf(" (%s)", e.DN)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(", attribute %q", e.Field)
	}
	return msg + ": " + e.Reason
}
