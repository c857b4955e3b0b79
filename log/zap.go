package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	l *zap.Logger
}

// Zap adapts zap.Logger to Logger. Namespaces from context become the zap
// logger name joined with dots. TRACE maps to zap debug level and FATAL
// maps to error level so that a log line never terminates the process.
func Zap(l *zap.Logger) *zapLogger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl, ok := zapLevel(LevelFromContext(ctx))
	if !ok {
		return
	}
	l := z.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}
	if ce := l.Check(lvl, msg); ce != nil {
		ce.Write(zapFields(fields)...)
	}
}

func zapLevel(lvl Level) (zapcore.Level, bool) {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel, true
	case INFO:
		return zapcore.InfoLevel, true
	case WARN:
		return zapcore.WarnLevel, true
	case ERROR, FATAL:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

func zapFields(fields []Field) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case IntType:
			zf = append(zf, zap.Int(f.Key(), f.IntValue()))
		case Int64Type:
			zf = append(zf, zap.Int64(f.Key(), f.Int64Value()))
		case StringType:
			zf = append(zf, zap.String(f.Key(), f.StringValue()))
		case BoolType:
			zf = append(zf, zap.Bool(f.Key(), f.BoolValue()))
		case DurationType:
			zf = append(zf, zap.Duration(f.Key(), f.DurationValue()))
		case StringsType:
			zf = append(zf, zap.Strings(f.Key(), f.StringsValue()))
		case ErrorType:
			zf = append(zf, zap.NamedError(f.Key(), f.ErrorValue()))
		case StringerType:
			zf = append(zf, zap.String(f.Key(), f.String()))
		default:
			zf = append(zf, zap.Any(f.Key(), f.AnyValue()))
		}
	}

	return zf
}
