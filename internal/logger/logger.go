// Package logger builds the structured JSON logger shared by the whole service.
package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// locationFormatter renders entries as JSON with timestamps in a fixed location.
type locationFormatter struct {
	loc  *time.Location
	json *logrus.JSONFormatter
}

func (f *locationFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Time = entry.Time.In(f.loc)
	return f.json.Format(entry)
}

// New returns a logrus logger writing one JSON object per line to w.
// Keys: ts (RFC3339Nano in loc), level, msg, plus any fields.
// An unknown level falls back to info.
func New(w io.Writer, level string, loc *time.Location) *logrus.Logger {
	if loc == nil {
		loc = time.UTC
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&locationFormatter{
		loc: loc,
		json: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
				logrus.FieldKeyMsg:  "msg",
			},
		},
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}
