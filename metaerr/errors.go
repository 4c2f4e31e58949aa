package metaerr

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind represents the metadata error kind enumerate
type Kind int

const (
	// KindInput is a caller input error (missing or nil data where
	// data is required).
	KindInput Kind = iota
	// KindParse is an XML packet parse error.
	KindParse
	// KindCoerce is a raw value to typed value coercion error.
	KindCoerce
	// KindContainer is an ambiguous RDF container error, raised when a
	// list shaped field does not hold exactly one Bag, Seq or Alt.
	KindContainer
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindParse:
		return "parse"
	case KindCoerce:
		return "coerce"
	case KindContainer:
		return "container"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "input":
		*k = KindInput
	case "parse":
		*k = KindParse
	case "coerce":
		*k = KindCoerce
	case "container":
		*k = KindContainer
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error represents a metadata extraction error.
//
// Coercion and container errors are local to one field: resolvers
// record them and report the field absent. Parse errors are recoverable
// at the aggregate. Only input errors reject an operation outright.
type Error struct {
	Kind      Kind   `json:"kind"`
	Namespace string `json:"namespace,omitempty"`
	Field     string `json:"field,omitempty"`
	Value     string `json:"value,omitempty"`
	Message   string `json:"message,omitempty"`
	Err       error  `json:"-"`
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s error", e.Kind)
	if e.Namespace != "" {
		s += " ns:" + e.Namespace
	}
	if e.Field != "" {
		s += " field:" + e.Field
	}
	if e.Value != "" {
		s += " value:" + e.Value
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err if err is, or wraps, an *Error.
func KindOf(err error) (Kind, bool) {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind, true
	}
	return 0, false
}

func Input(opts ...Option) *Error {
	e := &Error{Kind: KindInput}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func Parse(cause error, opts ...Option) *Error {
	e := &Error{Kind: KindParse, Err: cause}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func Coerce(field, value string, opts ...Option) *Error {
	e := &Error{Kind: KindCoerce, Field: field, Value: value}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func Container(field string, opts ...Option) *Error {
	e := &Error{Kind: KindContainer, Field: field}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
