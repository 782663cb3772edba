package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.SugaredLogger
	once sync.Once
)

// L returns the shared application logger.
func L() *zap.SugaredLogger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		base, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			base = zap.NewNop()
		}
		log = base.Sugar()
	})
	return log
}

func Infow(msg string, kv ...interface{})  { L().Infow(msg, kv...) }
func Debugw(msg string, kv ...interface{}) { L().Debugw(msg, kv...) }
func Errorw(msg string, kv ...interface{}) { L().Errorw(msg, kv...) }
func Fatalw(msg string, kv ...interface{}) { L().Fatalw(msg, kv...) }
