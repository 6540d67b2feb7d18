// Package logging implements structured logging on top of go-kit log.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	flag "github.com/spf13/pflag"
)

const (
	CfgLogLevel  = "log.level"
	CfgLogFormat = "log.format"
)

var (
	base = &log.SwapLogger{}

	_ flag.Value = (*Level)(nil)
	_ flag.Value = (*Format)(nil)
)

// Format is a logging format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

func (f *Format) String() string {
	switch *f {
	case FmtLogfmt:
		return "logfmt"
	case FmtJSON:
		return "json"
	default:
		panic("logging: unsupported format")
	}
}

func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "logfmt":
		*f = FmtLogfmt
	case "json":
		*f = FmtJSON
	default:
		return fmt.Errorf("logging: invalid log format: '%s'", s)
	}
	return nil
}

func (f *Format) Type() string {
	return "[logfmt,json]"
}

// Level is a log level.
type Level uint

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) toOption() level.Option {
	switch l {
	case LevelDebug:
		return level.AllowDebug()
	case LevelInfo:
		return level.AllowInfo()
	case LevelWarn:
		return level.AllowWarn()
	case LevelError:
		return level.AllowError()
	default:
		panic("logging: unsupported log level")
	}
}

func (l *Level) String() string {
	switch *l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		panic("logging: unsupported log level")
	}
}

func (l *Level) Set(s string) error {
	switch strings.ToLower(s) {
	case "debug":
		*l = LevelDebug
	case "info":
		*l = LevelInfo
	case "warn":
		*l = LevelWarn
	case "error":
		*l = LevelError
	default:
		return fmt.Errorf("logging: invalid log level: '%s'", s)
	}
	return nil
}

func (l *Level) Type() string {
	return "[debug,info,warn,error]"
}

// Flags holds the values set by RegisterFlags.
type Flags struct {
	Level  Level
	Format Format
}

// RegisterFlags adds --log.level and --log.format to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{Level: LevelInfo, Format: FmtLogfmt}
	fs.Var(&f.Level, CfgLogLevel, "minimum log level")
	fs.Var(&f.Format, CfgLogFormat, "log format")
	return f
}

// Initialize points every logger returned by GetLogger at w.
func Initialize(w io.Writer, format Format, lvl Level) {
	w = log.NewSyncWriter(w)

	var logger log.Logger
	switch format {
	case FmtJSON:
		logger = log.NewJSONLogger(w)
	default:
		logger = log.NewLogfmtLogger(w)
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.Caller(5))
	base.Swap(level.NewFilter(logger, lvl.toOption()))
}

// GetLogger returns a logger tagged with module. Loggers obtained before
// Initialize discard their output until it is called.
func GetLogger(module string) log.Logger {
	return log.With(base, "module", module)
}
