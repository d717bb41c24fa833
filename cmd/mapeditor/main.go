package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"mapeditor/internal/config"
	"mapeditor/internal/game"
	"mapeditor/internal/logging"
	"mapeditor/internal/rlhost"
	"mapeditor/internal/world"
)

const usage = `usage: mapeditor [flags] [command]

commands:
  (none)                       open the editor window
  convert <legacy.map> <out>   convert a legacy line-format map to JSON
  export  <map.json> <out>     write a JSON map in the legacy line format

flags:
`

func main() {
	configPath := flag.String("config", config.DefaultPath, "editor configuration file")
	profileMode := flag.String("profile", "", "write a profile to the working directory: cpu or mem")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && !filepath.IsAbs(*configPath) {
			if _, err := os.Stat(filepath.Join(execDir, *configPath)); err == nil {
				os.Chdir(execDir)
			}
		}
	}

	if err := run(*configPath, *profileMode, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "mapeditor:", err)
		os.Exit(1)
	}
}

func run(configPath, profileMode string, args []string) error {
	if len(args) > 0 {
		return runCommand(args)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := rlhost.New(cfg, log)
	s, err := game.NewSession(h, cfg, log)
	if err != nil {
		return err
	}
	defer s.Close()

	log.Info("editor starting", zap.String("config", configPath), zap.String("map", cfg.MapPath))
	if err := h.Run(ctx, s); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runCommand(args []string) error {
	if len(args) != 3 {
		flag.Usage()
		return fmt.Errorf("%s: want 2 arguments, got %d", args[0], len(args)-1)
	}
	in, out := args[1], args[2]
	switch args[0] {
	case "convert":
		m, err := world.ImportLegacy(in)
		if err != nil {
			return err
		}
		if m.MapName == "" {
			m.MapName = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		}
		if err := world.Save(out, m); err != nil {
			return err
		}
		fmt.Printf("converted %d objects to %s\n", len(m.Objects), out)
	case "export":
		m, err := world.Load(in)
		if err != nil {
			return err
		}
		if err := world.ExportLegacy(out, m); err != nil {
			return err
		}
		fmt.Printf("exported %d objects to %s\n", len(m.Objects), out)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}
