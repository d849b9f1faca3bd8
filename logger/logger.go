// Package logger is the central logging facility for the program. Log entries
// are always written to stderr because stdout carries generated source text.
//
// Entries are tagged with a short string naming the part of the program that
// created the entry. Whether an entry is written at all depends on the
// Permission passed to Log() or Logf().
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = allow{}

// Deny indicates that the logging request should never be allowed.
var Deny Permission = deny{}

var (
	crit sync.Mutex
	log  = newLogger(os.Stderr)
)

func newLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	return zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// SetOutput changes where log entries are written. The console format and the
// current level are kept.
func SetOutput(w io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	log = newLogger(w).Level(log.GetLevel())
}

// SetLevel changes the minimum level of entries that are written. Entries
// created by Log() and Logf() are at the info level. Entries created by Debug()
// and Debugf() are at the debug level and are not written by default.
func SetLevel(level zerolog.Level) {
	crit.Lock()
	defer crit.Unlock()
	log = log.Level(level)
}

func entry(level zerolog.Level, perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	crit.Lock()
	defer crit.Unlock()
	log.WithLevel(level).Str("tag", tag).Msg(s)
}

// Log adds an entry to the log. The detail argument can be a string, an error
// or any type implementing fmt.Stringer.
func Log(perm Permission, tag string, detail any) {
	entry(zerolog.InfoLevel, perm, tag, detail)
}

// Logf adds a formatted entry to the log.
func Logf(perm Permission, tag string, format string, args ...any) {
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// Debug is the same as Log() but the entry is only written if the level has
// been lowered with SetLevel().
func Debug(perm Permission, tag string, detail any) {
	entry(zerolog.DebugLevel, perm, tag, detail)
}

// Debugf adds a formatted debug entry to the log.
func Debugf(perm Permission, tag string, format string, args ...any) {
	Debug(perm, tag, fmt.Sprintf(format, args...))
}
