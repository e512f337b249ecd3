package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
)

// ZerologLogger реализует LoggerPort поверх zerolog
// В local-окружении цветной консольный вывод, иначе JSON
type ZerologLogger struct {
	log    zerolog.Logger
	module string
}

func NewZerologLogger(timezone string, local bool) (*ZerologLogger, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(loc)
	}
	zerolog.TimeFieldFormat = "2006-01-02 15:04:05.000"

	var log zerolog.Logger
	if local {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05.000"}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stdout).
			Level(zerolog.InfoLevel).
			With().Timestamp().Logger()
	}

	return &ZerologLogger{log: log}, nil
}

func (l *ZerologLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return &ZerologLogger{
		log:    l.log.With().Fields(map[string]interface{}(fields)).Logger(),
		module: l.module,
	}
}

func (l *ZerologLogger) WithModule(module string) out.LoggerPort {
	return &ZerologLogger{
		log:    l.log,
		module: module,
	}
}

func (l *ZerologLogger) Debug(event string, fields out.LogFields) {
	l.emit(l.log.Debug(), event, fields)
}

func (l *ZerologLogger) Info(event string, fields out.LogFields) {
	l.emit(l.log.Info(), event, fields)
}

func (l *ZerologLogger) Warn(event string, fields out.LogFields) {
	l.emit(l.log.Warn(), event, fields)
}

func (l *ZerologLogger) Error(event string, fields out.LogFields) {
	l.emit(l.log.Error(), event, fields)
}

func (l *ZerologLogger) emit(e *zerolog.Event, event string, fields out.LogFields) {
	module := l.module
	if module == "" {
		module = "unknown"
	}

	e.Str("module", module)
	for k, v := range fields {
		e.Interface(k, v)
	}
	e.Msg(event)
}
