// Package log
package log

import "github.com/alexx-ftw/flight-school-scheduling-optimization/internal/interfaces/global"

// NopLogger 丢弃所有日志, 供测试使用
type NopLogger struct{}

func (logger *NopLogger) Init(_ bool)                          {}
func (logger *NopLogger) ShutdownCallback() global.Callable    { return nil }
func (logger *NopLogger) Debug(_ string, _ ...interface{})     {}
func (logger *NopLogger) DebugF(_ string, _ ...interface{})    {}
func (logger *NopLogger) Info(_ string, _ ...interface{})      {}
func (logger *NopLogger) InfoF(_ string, _ ...interface{})     {}
func (logger *NopLogger) Warn(_ string, _ ...interface{})      {}
func (logger *NopLogger) WarnF(_ string, _ ...interface{})     {}
func (logger *NopLogger) Error(_ string, _ ...interface{})     {}
func (logger *NopLogger) ErrorF(_ string, _ ...interface{})    {}
func (logger *NopLogger) Fatal(_ string, _ ...interface{})     {}
func (logger *NopLogger) FatalF(_ string, _ ...interface{})    {}
