package logger

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// TranscriptLogger 负责输出终端会话的输入、输出与跳转记录。
type TranscriptLogger interface {
	Command(sessionID string, line string, seq int)
	Output(sessionID string, kind string, text string)
	Navigate(sessionID string, target string)
	Closed(sessionID string, commands int)
}

// DefaultTranscriptLogPath 会话记录的默认路径。
const DefaultTranscriptLogPath = "logs/transcript.log"

// Transcript 是全局唯一的会话记录器实例。
var Transcript TranscriptLogger = NewTranscriptLogger(nil)

// GlobalTranscriptLogger 返回全局唯一的会话记录器。
func GlobalTranscriptLogger() TranscriptLogger {
	return Transcript
}

// SetGlobalTranscriptLogger 覆盖全局会话记录器，传入 nil 将重置为默认实现。
func SetGlobalTranscriptLogger(logger TranscriptLogger) {
	if logger == nil {
		logger = NewTranscriptLogger(nil)
	}
	Transcript = logger
}

// SetupTranscriptFile 将会话记录写入独立文件并替换全局记录器。
func SetupTranscriptFile(path string) (io.Closer, string, error) {
	if path == "" {
		path = DefaultTranscriptLogPath
	}
	f, err := openLogFile(path)
	if err != nil {
		return nil, "", err
	}
	l := logrus.New()
	l.SetOutput(f)
	SetGlobalTranscriptLogger(NewTranscriptLogger(l))
	return f, path, nil
}

// StdTranscriptLogger 使用 logrus 输出日志。
type StdTranscriptLogger struct {
	logger *logrus.Entry
}

// NewTranscriptLogger 构造默认的会话记录器。
func NewTranscriptLogger(l *Logger) *StdTranscriptLogger {
	if l == nil {
		l = root()
	}
	l.SetFormatter(PlainFormatter{})
	l.SetReportCaller(true)
	return &StdTranscriptLogger{logger: logrus.NewEntry(l).WithField("component", "transcript")}
}

// Command 记录一行提交的输入。
func (l *StdTranscriptLogger) Command(sessionID string, line string, seq int) {
	l.printf(logrus.InfoLevel, sessionID, "-> command seq=%d line=%s", seq, sanitize(line))
}

// Output 记录命令的输出。
func (l *StdTranscriptLogger) Output(sessionID string, kind string, text string) {
	l.printf(logrus.DebugLevel, sessionID, "<- output kind=%s text=%s", kind, sanitize(text))
}

// Navigate 记录一次路由跳转请求。
func (l *StdTranscriptLogger) Navigate(sessionID string, target string) {
	l.printf(logrus.InfoLevel, sessionID, "=> navigate target=%s", target)
}

// Closed 记录会话随弹窗关闭而丢弃。
func (l *StdTranscriptLogger) Closed(sessionID string, commands int) {
	l.printf(logrus.InfoLevel, sessionID, "xx session discarded commands=%d", commands)
}

// NoopTranscriptLogger 忽略所有日志输出。
type NoopTranscriptLogger struct{}

// NewNoopTranscriptLogger 创建一个不输出的记录器。
func NewNoopTranscriptLogger() NoopTranscriptLogger {
	return NoopTranscriptLogger{}
}

func (NoopTranscriptLogger) Command(sessionID string, line string, seq int)    {}
func (NoopTranscriptLogger) Output(sessionID string, kind string, text string) {}
func (NoopTranscriptLogger) Navigate(sessionID string, target string)          {}
func (NoopTranscriptLogger) Closed(sessionID string, commands int)             {}

// Command 记录一行提交的输入。
func Command(sessionID string, line string, seq int) {
	if Transcript != nil {
		Transcript.Command(sessionID, line, seq)
	}
}

// Output 记录命令输出。
func Output(sessionID string, kind string, text string) {
	if Transcript != nil {
		Transcript.Output(sessionID, kind, text)
	}
}

// Navigate 记录路由跳转。
func Navigate(sessionID string, target string) {
	if Transcript != nil {
		Transcript.Navigate(sessionID, target)
	}
}

// Closed 记录会话丢弃。
func Closed(sessionID string, commands int) {
	if Transcript != nil {
		Transcript.Closed(sessionID, commands)
	}
}

func (l *StdTranscriptLogger) printf(level logrus.Level, sessionID string, format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	if !l.logger.Logger.IsLevelEnabled(level) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	entry := l.logger
	if sessionID != "" {
		entry = entry.WithField("session_id", sessionID)
	}
	if caller := findCaller(); caller != "" {
		entry = entry.WithField("caller", caller)
	}
	entry.Log(level, msg)
}

func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, "\r", `\r`)
	return text
}

func findCaller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !strings.Contains(frame.File, "transcript.go") {
			return fmt.Sprintf("%s:%d", shortenFilePath(frame.File), frame.Line)
		}
		if !more {
			break
		}
	}
	return ""
}
