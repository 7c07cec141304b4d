package vector

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// ReplaceLogger makes l the logger used for reallocation and transfer
// failure events and returns a function that restores the previous one.
// Events are logged at debug level. A nil l disables logging.
func ReplaceLogger(l *zap.Logger) func() {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	return func() { logger.Store(prev) }
}

func logGrow(typ, strategy string, from, to, moved int) {
	if ce := logger.Load().Check(zap.DebugLevel, "vector: grow"); ce != nil {
		ce.Write(
			zap.String("type", typ),
			zap.String("strategy", strategy),
			zap.Int("from", from),
			zap.Int("to", to),
			zap.Int("elements", moved),
		)
	}
}

func logTransferFailed(typ, strategy string, n int, err error) {
	if ce := logger.Load().Check(zap.DebugLevel, "vector: transfer failed"); ce != nil {
		ce.Write(
			zap.String("type", typ),
			zap.String("strategy", strategy),
			zap.Int("elements", n),
			zap.Error(err),
		)
	}
}
