package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger
)

const logFlags = log.Ldate | log.Ltime | log.LUTC | log.Lshortfile

func init() {
	_ = Setup("info", os.Stdout)
}

// Setup points every logger at out, silencing those below level
// (debug, info, warn, error).
func Setup(level string, out io.Writer) error {
	rank := map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}
	min, ok := rank[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return fmt.Errorf("unknown log level %q", level)
	}

	writer := func(r int) io.Writer {
		if r < min {
			return io.Discard
		}
		return out
	}
	Debug = log.New(writer(0), "DEBUG: ", logFlags)
	Info = log.New(writer(1), "INFO: ", logFlags)
	Warn = log.New(writer(2), "WARN: ", logFlags)
	Error = log.New(writer(3), "ERROR: ", logFlags)
	return nil
}
