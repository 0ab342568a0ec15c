package callerr

import (
	"errors"
	"fmt"
)

// Kind classifies everything that can go wrong between reading the config
// file and the child process exiting.
type Kind int

const (
	Internal Kind = iota
	Environment
	ConfigOpen
	ConfigRead
	ConfigParse
	IndexReadDir
	VersionParse
	VersionNotFound
	ProtonMissing
	ProgramMissing
	ProtonDir
	ProtonSpawn
	ProtonWait
	ProtonExit
)

func (k Kind) String() string {
	switch k {
	case Environment:
		return "failed to read environment"
	case ConfigOpen:
		return "failed to open config"
	case ConfigRead:
		return "failed to read config"
	case ConfigParse:
		return "failed to parse config"
	case IndexReadDir:
		return "failed to index"
	case VersionParse:
		return "failed to parse version"
	case VersionNotFound:
		return "version not found"
	case ProtonMissing:
		return "cannot find Proton"
	case ProgramMissing:
		return "cannot find program"
	case ProtonDir:
		return "failed to create Proton directory"
	case ProtonSpawn:
		return "failed to spawn Proton"
	case ProtonWait:
		return "failed to wait for Proton"
	case ProtonExit:
		return "Proton exited with an error"
	default:
		return "internal error"
	}
}

// Error is the failure type returned by every fallible step. Code is only
// meaningful for ProtonExit, where it carries the child's exit code.
type Error struct {
	Kind Kind
	Code int

	msg string
	err error
}

// New builds an Error of the given kind with a formatted detail message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap is New with an underlying cause attached for errors.Is/As chains.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// Exit reports a child that ran but did not succeed. A signaled child has no
// exit code; it is reported as code 1.
func Exit(code int, signaled bool) *Error {
	if signaled {
		return &Error{Kind: ProtonExit, Code: 1, msg: "killed by a signal"}
	}
	return &Error{Kind: ProtonExit, Code: code, msg: fmt.Sprintf("exit code %d", code)}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

// KindOf extracts the Kind from an error chain, or Internal when the chain
// holds no *Error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return Internal
}

// IsKind reports whether the error chain holds an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}
