package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"folio-cli/internal/history"
	"folio-cli/internal/server"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

func serveMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var overrides stringSlice
	var addr string
	var dbPath string
	var maxSessions int
	var idleTimeout time.Duration
	defaultDB, _ := history.DefaultPath()
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	fs.StringVar(&addr, "addr", "", "Listen address (default :$PORT, or :8080)")
	fs.StringVar(&dbPath, "db", defaultDB, "SQLite file for the command history (empty disables it)")
	fs.IntVar(&maxSessions, "max-sessions", 256, "Maximum number of live terminal sessions (0 = unlimited)")
	fs.DurationVar(&idleTimeout, "idle-timeout", server.DefaultIdleTimeout, "Reclaim terminal sessions idle longer than this (negative disables)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse serve args: %v", err)
	}

	rt, err := loadRuntime(root, prependOverrides(root.overrides, []string(overrides)))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if rt.cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	bus, stop := startEventLog()
	defer stop()

	opts := server.Options{
		Profile:     rt.profile,
		Events:      bus,
		MaxSessions: maxSessions,
		IdleTimeout: idleTimeout,
	}
	if strings.TrimSpace(dbPath) != "" {
		store, err := history.Open(dbPath)
		if err != nil {
			log.Fatalf("failed to open history db: %v", err)
		}
		defer store.Close()
		opts.History = store
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := server.New(opts).Serve(ctx, listenAddr(addr)); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// listenAddr 优先使用 --addr，其次是 PORT 环境变量（可来自 .env）。
func listenAddr(flagAddr string) string {
	if addr := strings.TrimSpace(flagAddr); addr != "" {
		return addr
	}
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
