// SPDX-License-Identifier: EPL-2.0

// Package logging builds the logrus logger used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.000 Z07:00"

// Setup returns a logger writing to out at level ("info" when empty) in
// the given format, "text" or "json".
func Setup(level, format string, out io.Writer) (*logrus.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case "", "text":
		formatter = &logrus.TextFormatter{
			TimestampFormat:  timestampFormat,
			FullTimestamp:    true,
			QuoteEmptyFields: true,
		}
	case "json":
		formatter = &logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		}
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(formatter)
	log.SetOutput(out)

	return log, nil
}
