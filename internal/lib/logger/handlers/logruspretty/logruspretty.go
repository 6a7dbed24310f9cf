package logruspretty

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = 31
	colorGreen  = 32
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

// PrettyHandler is a colorized logrus formatter for local development.
type PrettyHandler struct {
	out io.Writer
}

func NewPrettyHandler(out io.Writer) *PrettyHandler {
	return &PrettyHandler{out: out}
}

func (h *PrettyHandler) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "\x1b[%dm%s\x1b[0m[%s] %s",
		levelColor(entry.Level),
		strings.ToUpper(entry.Level.String()),
		entry.Time.Format("15:04:05.000"),
		entry.Message,
	)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&b, " \x1b[%dm%s\x1b[0m=%v", colorBlue, key, entry.Data[key])
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

func levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.InfoLevel:
		return colorGreen
	case logrus.WarnLevel:
		return colorYellow
	default:
		return colorRed
	}
}
