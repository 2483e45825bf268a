package cli

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gmatrix/matrix"
)

// NewLogger builds a development-style zap logger on stderr at the named level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// observeWith turns construction events into debug log lines.
func observeWith(log *zap.Logger) matrix.Option {
	return matrix.WithObserver(func(ev matrix.Event) {
		fields := []zap.Field{
			zap.Uint32("rows", ev.Rows),
			zap.Uint32("cols", ev.Cols),
			zap.Int("len", ev.Len),
		}
		if ev.Err != nil {
			log.Debug("matrix rejected", append(fields, zap.Error(ev.Err))...)
			return
		}
		log.Debug("matrix constructed", fields...)
	})
}
