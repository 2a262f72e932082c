// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets the global log level and writes human readable output
// to out. Extra writers, such as a log file, receive the same entries as JSON.
func ConfigureLogger(level zerolog.Level, out io.Writer, writers ...io.Writer) {
	output := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		},
	}
	output = append(output, writers...)

	log.Logger = log.Output(zerolog.MultiLevelWriter(output...))
	zerolog.SetGlobalLevel(level)
}

// OpenLogFile opens path for appending log entries
func OpenLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
