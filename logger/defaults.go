package logger

import (
	"fmt"
	"os"
	"regexp"

	"github.com/rs/zerolog"
)

type DefaultLogger struct{}

var Default Logger = &DefaultLogger{}

var zlog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

var urlRegex = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*:\/\/[a-zA-Z0-9+%/.\-:_?&=#@+]+`)

// redact replaces URLs with a placeholder when SAFE_LOGS is enabled so
// playlist source URLs (which often embed credentials) stay out of logs.
func redact(text string) string {
	if os.Getenv("SAFE_LOGS") == "true" {
		return urlRegex.ReplaceAllString(text, "[redacted url]")
	}
	return text
}

func (*DefaultLogger) Log(msg string) {
	zlog.Info().Msg(redact(msg))
}

func (*DefaultLogger) Logf(format string, v ...any) {
	zlog.Info().Msg(redact(fmt.Sprintf(format, v...)))
}

func (*DefaultLogger) Debug(msg string) {
	if os.Getenv("DEBUG") == "true" {
		zlog.Debug().Msg(redact(msg))
	}
}

func (*DefaultLogger) Debugf(format string, v ...any) {
	if os.Getenv("DEBUG") == "true" {
		zlog.Debug().Msg(redact(fmt.Sprintf(format, v...)))
	}
}

func (*DefaultLogger) Warn(msg string) {
	zlog.Warn().Msg(redact(msg))
}

func (*DefaultLogger) Warnf(format string, v ...any) {
	zlog.Warn().Msg(redact(fmt.Sprintf(format, v...)))
}

func (*DefaultLogger) Error(msg string) {
	zlog.Error().Msg(redact(msg))
}

func (*DefaultLogger) Errorf(format string, v ...any) {
	zlog.Error().Msg(redact(fmt.Sprintf(format, v...)))
}

func (*DefaultLogger) Fatal(msg string) {
	zlog.Fatal().Msg(redact(msg))
}

func (*DefaultLogger) Fatalf(format string, v ...any) {
	zlog.Fatal().Msg(redact(fmt.Sprintf(format, v...)))
}
