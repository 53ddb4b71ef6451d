package report

import (
	"fmt"
	"os"
)

// InternalError is the value carried by panics raised from ICE.  It is a
// distinct type so that embedding tools (language servers, test harnesses) can
// recover from internal errors without swallowing unrelated panics.
type InternalError struct {
	// The formatted error message.
	Message string
}

func (ie *InternalError) Error() string {
	return "internal error: " + ie.Message
}

// ICE reports an internal compiler error: a bug or unexpected condition inside
// the compiler itself, such as a dangling arena id or a node with no source
// map entry.  These are never caused by bad input and are not intended to ever
// happen.  ICE panics rather than exiting so callers hosting the front end in
// a long-lived process can contain the failure.
func ICE(message string, args ...interface{}) {
	msg := fmt.Sprintf(message, args...)
	displayICE(msg)
	panic(&InternalError{Message: msg})
}

// Fatal reports a fatal error and exits the program.  These are expected
// errors that make it impossible to continue at all: generally invalid
// configuration such as an unreadable crate manifest.
func Fatal(message string, args ...interface{}) {
	displayFatal(fmt.Sprintf(message, args...))
	os.Exit(1)
}
