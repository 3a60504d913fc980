/*
Package errors implements custom error interfaces for quorum.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when absolutely necessary.

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New and Errxxx.Newf.
To test an error kind use Errxxx.Is(err). It unwraps the error and looks into
error lists created with Append.

Validation code should report each broken attribute with Field or AppendField,
so that a caller can find it again with FieldErrors.

Errors returned by external collaborators (for example a signer role) are
not registered here. They are passed to the caller untouched.

There is also support for stacktraces. Please ensure you create the custom error using
ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to ensure we attach
a stacktrace. If you wrap multiple times, we only record the first wrap with the stacktrace.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context for the error

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
