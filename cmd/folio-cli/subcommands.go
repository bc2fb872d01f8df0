package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"folio-cli/internal/config"
	"folio-cli/internal/features"
)

func featuresMain(root rootArgs, args []string) {
	var overrides stringSlice
	fs := flag.NewFlagSet("features", flag.ExitOnError)
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse features args: %v", err)
	}
	rt, err := loadRuntime(root, prependOverrides(root.overrides, []string(overrides)))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	writeFeatures(os.Stdout, rt.features)
}

func writeFeatures(w io.Writer, set features.Set) {
	for _, spec := range features.Specs {
		fmt.Fprintf(w, "%s\t%s\t%t\n", spec.Key, spec.Stage, set.Enabled(spec.Key))
	}
}

func configMain(root rootArgs, args []string) {
	if len(args) == 0 {
		log.Fatalf("usage: folio-cli config <init|path>")
	}
	switch args[0] {
	case "path":
		path := root.cfgPath
		if path == "" {
			path = config.DefaultPath()
		}
		fmt.Println(path)
	case "init":
		fs := flag.NewFlagSet("config init", flag.ExitOnError)
		var force bool
		fs.BoolVar(&force, "force", false, "Overwrite an existing config file")
		if err := fs.Parse(args[1:]); err != nil {
			log.Fatalf("parse config args: %v", err)
		}
		path, err := initConfig(root.cfgPath, force)
		if err != nil {
			log.Fatalf("config init: %v", err)
		}
		fmt.Printf("wrote %s\n", path)
	default:
		log.Fatalf("unknown config command: %s (use init or path)", args[0])
	}
}

// initConfig 写出带默认值的配置文件，已存在且未 force 时报错。
func initConfig(path string, force bool) (string, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	cfg := config.Default()
	cfg.Features = make(map[string]bool, len(features.Specs))
	for _, spec := range features.Specs {
		cfg.Features[spec.Key] = spec.DefaultEnabled
	}
	if err := config.Save(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}
