package rt

import (
	"fmt"
	"os"
)

// ErrorKind enumerates the fatal error categories from spec.md §7.
// BadUtf8 is handled internally (converted to U+FFFD) and never
// reaches this path; a map lookup miss is a recoverable domain signal
// returned as a tagged union, never an ErrorKind.
type ErrorKind string

const (
	ErrBadUTF8           ErrorKind = "BadUtf8"
	ErrBoundsError       ErrorKind = "BoundsError"
	ErrUnknownTag        ErrorKind = "UnknownTag"
	ErrMissingMethod     ErrorKind = "MissingMethod"
	ErrInvokeOnPrimitive ErrorKind = "InvokeOnPrimitive"
	ErrArithUnsupported  ErrorKind = "ArithUnsupported"
	ErrTooLong           ErrorKind = "TooLong"
	ErrLeakDetected      ErrorKind = "LeakDetected"
)

// abort reports a programmer error reachable only from miscompiled
// code: it prints a diagnostic to stderr and terminates the process,
// matching the "fatal abort with a diagnostic to stderr" policy in
// spec.md §7.
func abort(kind ErrorKind, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "corert: %s: %s\n", kind, msg)
	os.Exit(1)
}
