package main

import (
	"flag"
	"fmt"
	"os"

	"folio-cli/internal/events"
	"folio-cli/internal/logger"
	"folio-cli/internal/router"
	"folio-cli/internal/tui"
)

var log = logger.Named("cli")

func main() {
	logger.Configure()
	if logFile, _, err := logger.SetupFile(logger.DefaultLogPath); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}
	if transcriptCloser, _, err := logger.SetupTranscriptFile(logger.DefaultTranscriptLogPath); err != nil {
		log.Warnf("failed to initialize transcript log (%s): %v", logger.DefaultTranscriptLogPath, err)
	} else if transcriptCloser != nil {
		defer transcriptCloser.Close()
	}

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "exec":
			execMain(root, rest[1:])
			return
		case "serve":
			serveMain(root, rest[1:])
			return
		case "features":
			featuresMain(root, rest[1:])
			return
		case "config":
			configMain(root, rest[1:])
			return
		case "completion":
			completionMain(rest[1:])
			return
		}
	}

	runInteractive(root, rest)
}

func runInteractive(root rootArgs, args []string) {
	fs := flag.NewFlagSet("folio-cli", flag.ExitOnError)
	var overrides stringSlice
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse args: %v", err)
	}

	rt, err := loadRuntime(root, prependOverrides(root.overrides, []string(overrides)))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	loc, err := router.Parse(root.startPath)
	if err != nil {
		log.Fatalf("invalid --path: %v", err)
	}

	bus, stop := startEventLog()
	defer stop()

	res, err := tui.Run(tui.Options{
		Profile:   rt.profile,
		Content:   rt.content,
		ToggleKey: rt.toggleKey,
		Features:  rt.features,
		Events:    bus,
		Start:     loc,
	})
	if err != nil {
		log.Fatalf("program exit: %v", err)
	}
	fmt.Printf("Left %s at %s%s\n", rt.profile.WithDefaults().Name, rt.cfg.Site.BaseURL, res.Location.Path())
}

// startEventLog 创建事件总线并把事件写入独立日志；返回的 stop 会等待日志写完。
func startEventLog() (*events.Bus, func()) {
	bus := events.NewBus()
	entry, closer := events.NewEventLogger(events.DefaultEventLogPath)
	done := events.LogEvents(bus.Subscribe(), entry)
	return bus, func() {
		bus.Close()
		<-done
		if closer != nil {
			_ = closer.Close()
		}
	}
}
