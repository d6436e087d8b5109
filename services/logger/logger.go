package logger

import "log"

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng log package,
// có gắn tên component vào đầu mỗi dòng log.
type DefaultLogger struct {
	level     Level
	component string
}

// NewDefaultLogger tạo logger với mức tối thiểu cho component
func NewDefaultLogger(level Level, component string) *DefaultLogger {
	return &DefaultLogger{
		level:     level,
		component: component,
	}
}

func (l *DefaultLogger) printf(prefix, format string, v ...interface{}) {
	if l.component != "" {
		log.Printf(prefix+" ("+l.component+") "+format, v...)
		return
	}
	log.Printf(prefix+" "+format, v...)
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.printf("[INFO]", format, v...)
	}
}

// Warn log cảnh báo
func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	if l.level <= WarnLevel {
		l.printf("[WARN]", format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.printf("[ERROR]", format, v...)
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.printf("[DEBUG]", format, v...)
	}
}
