// Package log is a thin façade over github.com/op/go-logging, giving every
// other package in this module a small, mockable logging interface instead
// of reaching for the standard library's log package or fmt.Println.
package log

import (
	"io"
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:2006-01-02 15:04:05.000} %{level:.4s} [%{module}] %{message}`,
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	logging.SetBackend(formatted)
}

// Logger is the subset of github.com/op/go-logging's API this module uses.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// New returns a named logger. Module names typically match the owning
// package (e.g. "scene", "loaders", "renderer").
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetLevel restricts emitted log records to lvl and above, across every
// logger obtained from New — used by CLI flags and by tests that want quiet
// output.
func SetLevel(lvl logging.Level) {
	logging.SetLevel(lvl, "")
}

// SetSink redirects log output to w, used by tests that want to capture or
// discard log output instead of writing to stderr.
func SetSink(w io.Writer) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	logging.SetBackend(formatted)
}
