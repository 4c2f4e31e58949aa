package metaerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option  { return func(e *Error) { e.Message = msg } }
func WithNamespace(ns string) Option { return func(e *Error) { e.Namespace = ns } }
func WithField(name string) Option   { return func(e *Error) { e.Field = name } }
func WithValue(v string) Option      { return func(e *Error) { e.Value = v } }
func WithCause(err error) Option     { return func(e *Error) { e.Err = err } }
