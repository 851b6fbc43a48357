package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	l    *zap.Logger
	once sync.Once
)

// Init 初始化全局 logger，重复调用只生效一次
func Init(level string) error {
	var err error
	once.Do(func() {
		lvl, perr := zapcore.ParseLevel(level)
		if perr != nil {
			lvl = zapcore.InfoLevel
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		l, err = cfg.Build(zap.AddCallerSkip(1))
	})
	return err
}

// L 返回全局 logger（未 Init 时退化为 Nop，测试友好）
func L() *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }

// Sync 进程退出前刷新缓冲
func Sync() {
	if l != nil {
		_ = l.Sync()
	}
}
