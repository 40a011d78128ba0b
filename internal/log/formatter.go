package log

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formatter renders entries as `time [LEVEL] message key=value ...`
// with an optional colored level marker.
type Formatter struct {
	NoColors        bool
	TimestampFormat string
}

const defaultTimestampFormat = "2006-01-02 15:04:05.000"

func newFormatter(noColors bool) *Formatter {
	return &Formatter{NoColors: noColors, TimestampFormat: defaultTimestampFormat}
}

func levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return 37 // gray
	case logrus.WarnLevel:
		return 33 // yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return 31 // red
	default:
		return 36 // blue
	}
}

// Format implements logrus.Formatter
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	b.WriteString(entry.Time.Format(f.TimestampFormat))
	level := strings.ToUpper(entry.Level.String())
	if f.NoColors {
		fmt.Fprintf(b, " [%s] ", level)
	} else {
		fmt.Fprintf(b, " \x1b[%dm[%s]\x1b[0m ", levelColor(entry.Level), level)
	}
	b.WriteString(strings.TrimSpace(entry.Message))
	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	if entry.HasCaller() {
		fmt.Fprintf(b, " (%s:%d)", entry.Caller.File, entry.Caller.Line)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
