package newt

import (
	"fmt"
	"strings"
)

// Phase indicates where in a dispatch the error occurred.
type Phase string

const (
	PhaseDispatch Phase = "dispatch" // command lookup
	PhaseDecode   Phase = "decode"   // token to typed value
	PhaseEncode   Phase = "encode"   // typed value to token
	PhaseInvoke   Phase = "invoke"   // native call
	PhaseBind     Phase = "bind"     // writing host variables
	PhaseCallback Phase = "callback" // native event into host code
)

// ErrorKind categorizes the error.
type ErrorKind string

const (
	KindMissingArgument     ErrorKind = "missing_argument"
	KindUnparseableArgument ErrorKind = "unparseable_argument"
	KindUnknownCommand      ErrorKind = "unknown_command"
	KindNativeFailure       ErrorKind = "native_failure"
	KindInvalidHandle       ErrorKind = "invalid_handle"
	KindNotInitialized      ErrorKind = "not_initialized"
	KindHostFailure         ErrorKind = "host_failure"
)

// BindingError is the structured error returned by every dispatch.
type BindingError struct {
	Cause    error
	Phase    Phase
	Kind     ErrorKind
	Command  string
	Usage    string
	Token    string
	Detail   string
	Position int
}

func (e *BindingError) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Command != "" {
		b.WriteString(" in ")
		b.WriteString(e.Command)
	}

	if e.Position >= 0 && (e.Kind == KindMissingArgument || e.Kind == KindUnparseableArgument) {
		fmt.Fprintf(&b, " at argument %d", e.Position)
	}

	if e.Token != "" {
		fmt.Fprintf(&b, " (token %q)", e.Token)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

func (e *BindingError) Unwrap() error {
	return e.Cause
}

// Is matches on kind. A target with a phase also has to match the phase.
func (e *BindingError) Is(target error) bool {
	t, ok := target.(*BindingError)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// UsageMessage is the line shown to the host for argument and dispatch
// failures. Empty for failures that carry no usage.
func (e *BindingError) UsageMessage() string {
	switch e.Kind {
	case KindMissingArgument, KindUnparseableArgument:
		return fmt.Sprintf("newt: usage: newt %s %s", e.Command, e.Usage)
	case KindUnknownCommand:
		return fmt.Sprintf("newt: unknown subcommand '%s'", e.Command)
	}
	return ""
}

// Sentinels for errors.Is.
var (
	ErrMissingArgument     = &BindingError{Kind: KindMissingArgument}
	ErrUnparseableArgument = &BindingError{Kind: KindUnparseableArgument}
	ErrUnknownCommand      = &BindingError{Kind: KindUnknownCommand}
	ErrNativeFailure       = &BindingError{Kind: KindNativeFailure}
	ErrInvalidHandle       = &BindingError{Kind: KindInvalidHandle}
	ErrNotInitialized      = &BindingError{Kind: KindNotInitialized}
	ErrHostFailure         = &BindingError{Kind: KindHostFailure}
)

type errorBuilder struct {
	err BindingError
}

func newError(phase Phase, kind ErrorKind) *errorBuilder {
	return &errorBuilder{err: BindingError{Phase: phase, Kind: kind, Position: -1}}
}

func (b *errorBuilder) Command(name, usage string) *errorBuilder {
	b.err.Command = name
	b.err.Usage = usage
	return b
}

func (b *errorBuilder) At(position int, token string) *errorBuilder {
	b.err.Position = position
	b.err.Token = token
	return b
}

func (b *errorBuilder) Cause(err error) *errorBuilder {
	b.err.Cause = err
	return b
}

func (b *errorBuilder) Detail(msg string, args ...any) *errorBuilder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

func (b *errorBuilder) Build() *BindingError {
	return &b.err
}
