package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/roach88/subsave/internal/store"
	"github.com/roach88/subsave/internal/subscription"
)

// Process exit statuses.
const (
	ExitSuccess      = 0 // command succeeded
	ExitFailure      = 1 // request rejected: unknown id, invalid fields
	ExitCommandError = 2 // backing file missing or corrupt, bad config, I/O
)

// Codes reported in the "code" field of error output.
const (
	ErrCodeGeneric         = "E001"
	ErrCodeNotFound        = "E002"
	ErrCodeInvalidArgument = "E003"
	ErrCodeMalformedFile   = "E004"
	ErrCodeFileNotFound    = "E005"
)

// ExitError ends a command with a specific exit status.
type ExitError struct {
	Code    int
	Message string
	Err     error

	// Reported is set once the failure has been written through an
	// OutputFormatter; main then only sets the exit status.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitError builds an unreported ExitError. err may be nil.
func exitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCode returns the exit status carried by err, or ExitFailure when err
// carries none.
func ExitCode(err error) int {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return ExitFailure
	}
	return exitErr.Code
}

// IsReported reports whether err was already written to the command output.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// classify maps a store error to an output code and exit status.
// ErrInvalidArgument is checked first: updating an unknown id matches both
// ErrInvalidArgument and ErrNotFound and is reported as invalid input.
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, store.ErrInvalidArgument):
		return ErrCodeInvalidArgument, ExitFailure
	case errors.Is(err, store.ErrNotFound):
		return ErrCodeNotFound, ExitFailure
	case errors.Is(err, store.ErrMalformed):
		return ErrCodeMalformedFile, ExitCommandError
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeFileNotFound, ExitCommandError
	default:
		return ErrCodeGeneric, ExitCommandError
	}
}

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format  string // "json" | "text"
	Writer  io.Writer
	File    string // backing file, named in file-level error details
	Verbose bool
}

// CLIResponse is the JSON envelope of every command result.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // set when Status is "error"
}

// CLIError describes a failed command in JSON output.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// FailureDetails locates a file-level failure.
type FailureDetails struct {
	File string `json:"file"`
	Line int    `json:"line,omitempty"`
}

func (d FailureDetails) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d", d.File, d.Line)
	}
	return d.File
}

// Record writes a single subscription.
func (f *OutputFormatter) Record(sub subscription.Subscription) error {
	if f.isJSON() {
		return f.encode(CLIResponse{Status: "ok", Data: sub})
	}
	_, err := fmt.Fprintln(f.Writer, sub)
	return err
}

// Records writes a record set in file order. JSON output always carries a
// data array, empty when the file holds no records.
func (f *OutputFormatter) Records(subs []subscription.Subscription) error {
	if f.isJSON() {
		if subs == nil {
			subs = []subscription.Subscription{}
		}
		return f.encode(CLIResponse{Status: "ok", Data: subs})
	}

	if len(subs) == 0 {
		_, err := fmt.Fprintln(f.Writer, "No subscriptions")
		return err
	}
	for _, sub := range subs {
		fmt.Fprintln(f.Writer, sub)
	}
	_, err := fmt.Fprintf(f.Writer, "%d subscription(s)\n", len(subs))
	return err
}

// Error writes a failure with an explicit code. Text output only shows
// details in verbose mode.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.isJSON() {
		return f.encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message, Details: details},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail writes err as a classified failure and returns the ExitError the
// command should end with.
func (f *OutputFormatter) Fail(message string, err error) error {
	code, exit := classify(err)
	_ = f.Error(code, err.Error(), f.details(code, err))

	exitErr := exitError(exit, message, err)
	exitErr.Reported = true
	return exitErr
}

// details returns the file location of a file-level failure, or nil.
func (f *OutputFormatter) details(code string, err error) interface{} {
	switch code {
	case ErrCodeMalformedFile, ErrCodeFileNotFound:
	default:
		return nil
	}

	d := FailureDetails{File: f.File}
	var parseErr *store.ParseError
	if errors.As(err, &parseErr) {
		d.Line = parseErr.Line
	}
	return d
}

func (f *OutputFormatter) isJSON() bool { return f.Format == "json" }

func (f *OutputFormatter) encode(resp CLIResponse) error {
	return json.NewEncoder(f.Writer).Encode(resp)
}
