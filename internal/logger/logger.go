package logger

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Logger = logrus.Logger
type LogEntry = logrus.Entry
type Fields = logrus.Fields

// DefaultLogPath 主日志文件，相对于当前工作目录。
const DefaultLogPath = "logs/folio-cli.log"

// 这些字段由 PlainFormatter 提升为前缀，不再重复出现在尾部。
var promotedFields = map[string]bool{"component": true, "caller": true, "type": true}

// 按顺序匹配，截取源码路径中仓库内的部分。
var pathMarkers = []string{"/internal/", "/cmd/"}

var rootLogger *Logger

func root() *Logger {
	if rootLogger == nil {
		rootLogger = logrus.StandardLogger()
	}
	return rootLogger
}

// Configure 为全局 logger 启用 caller 与 PlainFormatter。
func Configure() {
	root().SetReportCaller(true)
	root().SetFormatter(PlainFormatter{})
}

// SetRoot 替换全局 logger，nil 恢复为 logrus 标准 logger。测试里用它捕获输出。
func SetRoot(l *Logger) {
	rootLogger = l
}

// SetLevel 按名称设置全局级别，空字符串不做修改。
func SetLevel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	root().SetLevel(lvl)
	return nil
}

// Named 返回带 component 字段的全局入口。
func Named(component string) *LogEntry {
	entry := logrus.NewEntry(root())
	if component == "" {
		return entry
	}
	return entry.WithField("component", component)
}

// SetupFile 把全局日志改写到 logPath，默认 logs/folio-cli.log。
func SetupFile(logPath string) (io.Closer, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	f, err := openLogFile(logPath)
	if err != nil {
		return nil, "", err
	}
	root().SetOutput(f)
	return f, logPath, nil
}

// SetupComponentFile 为单个组件建立独立的文件 logger，例如事件日志。
func SetupComponentFile(component, logPath string) (*LogEntry, io.Closer, string, error) {
	f, err := openLogFile(logPath)
	if err != nil {
		return nil, nil, "", err
	}
	l := logrus.New()
	l.SetReportCaller(true)
	l.SetFormatter(PlainFormatter{})
	l.SetOutput(f)

	entry := logrus.NewEntry(l)
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry, f, logPath, nil
}

func openLogFile(logPath string) (*os.File, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// PlainFormatter 输出单行日志：
//
//	caller [timestamp] [LEVEL] [component] [type=...] message k=v ...
type PlainFormatter struct{}

func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return nil, nil
	}
	var b strings.Builder
	if caller := formatCaller(entry); caller != "" {
		b.WriteString(caller)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s] [%s]", entry.Time.UTC().Format(time.RFC3339Nano), strings.ToUpper(entry.Level.String()))
	if component, _ := entry.Data["component"].(string); component != "" {
		fmt.Fprintf(&b, " [%s]", component)
	}
	if eventType, ok := entry.Data["type"]; ok {
		fmt.Fprintf(&b, " [type=%v]", eventType)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	if fields := formatFields(entry.Data); fields != "" {
		b.WriteByte(' ')
		b.WriteString(fields)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func formatCaller(entry *logrus.Entry) string {
	if entry.HasCaller() {
		return fmt.Sprintf("%s:%d", shortenFilePath(entry.Caller.File), entry.Caller.Line)
	}
	caller, _ := entry.Data["caller"].(string)
	return caller
}

func formatFields(fields logrus.Fields) string {
	var parts []string
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		if promotedFields[k] {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

func shortenFilePath(file string) string {
	file = filepath.ToSlash(file)
	for _, marker := range pathMarkers {
		if idx := strings.Index(file, marker); idx != -1 {
			return file[idx+1:]
		}
	}
	if _, rest, ok := strings.Cut(file, "/folio-cli/"); ok {
		return rest
	}
	return filepath.Base(file)
}
