package notify

// Logger интерфейс логирования, реализуется pkg/logger
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
