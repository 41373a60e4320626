package observers

import (
	"log/slog"

	"github.com/tablekit/imexport"
)

// Log forwards run events to a structured logger: progress at debug,
// warnings at warn, errors at error level.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a log observer. A nil logger uses slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) OnProgress(percentage float64) {
	l.logger.Debug("progress updated", "percentage", percentage)
}

func (l *Log) OnWarning(warning imexport.Warning) {
	l.logger.Warn(warning.Message, "kind", warning.Kind)
}

func (l *Log) OnError(err *imexport.Error) {
	l.logger.Error(err.Message, "kind", err.Kind, "op", err.Op, "error", err.Err)
}
