package events

import (
	"encoding/json"
	"fmt"
	"io"

	"folio-cli/internal/logger"
)

// DefaultEventLogPath 默认的终端事件日志路径。
const DefaultEventLogPath = "logs/terminal-events.log"

// log 复用全局 logger，标记事件组件。
var log = logger.Named("events")

// NewEventLogger 创建写入独立文件的事件 logger；文件不可用时回退到全局 logger。
func NewEventLogger(path string) (*logger.LogEntry, io.Closer) {
	if path == "" {
		return logger.Named("events"), nil
	}
	entry, closer, _, err := logger.SetupComponentFile("events", path)
	if err != nil {
		log.Warnf("failed to set up event log file (%s): %v", path, err)
		return logger.Named("events"), nil
	}
	return entry, closer
}

// LogEvents 在后台消费订阅通道并逐条写日志。通道关闭后返回的 done 被关闭。
func LogEvents(ch <-chan Event, entry *logger.LogEntry) <-chan struct{} {
	if entry == nil {
		entry = log
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for evt := range ch {
			entry.WithFields(logger.Fields{
				"type":       string(evt.Type),
				"session_id": evt.SessionID,
				"payload":    encodePayload(evt.Payload),
			}).Info("terminal event")
		}
	}()
	return done
}

func encodePayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}
	return string(data)
}
