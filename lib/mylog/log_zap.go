package mylog

import (
	"context"

	"go.uber.org/zap"

	"github.com/amazons/backend/lib/mycontext"
)

func init() {
	New = newZapLogger
}

type zapLogger struct {
	logger *zap.SugaredLogger
}

func newZapLogger(componentName string) Logger {
	base, err := zap.NewProduction(zap.WithCaller(false))
	if err != nil {
		base = zap.NewNop()
	}

	return zapLogger{
		logger: base.Sugar().Named(componentName),
	}
}

func (l zapLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	logger := l.logger
	if traceID := mycontext.GetTraceID(ctx); traceID != "" {
		logger = logger.With("trace_id", traceID)
	}
	if traceLabel != "" {
		logger = logger.With("label", traceLabel)
	}

	switch severity {
	case SeverityDebug:
		logger.Debugf(format, a...)
	case SeverityWarn:
		logger.Warnf(format, a...)
	case SeverityError:
		logger.Errorf(format, a...)
	default:
		logger.Infof(format, a...)
	}
}
