// Command basslive plays the bass engine in real time on the default
// audio device, driven by a MIDI input port.
//
// Presets are read from a user directory and reloaded whenever a file in
// it changes. With -mcp the process also serves a Model Context Protocol
// tool set on stdin/stdout for browsing presets and editing parameters.
//
// Usage:
//
//	basslive [flags]
//
// Examples:
//
//	basslive -midi "Launchkey" -preset "Reese"
//	basslive -midi "" -mcp -presets ~/.config/algo-bass
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/cwbudde/algo-bass/bass"
	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/cwbudde/algo-bass/midiin"
	"github.com/cwbudde/algo-bass/params"
	"github.com/cwbudde/algo-bass/preset"
)

func main() {
	sampleRate := flag.Int("sr", 48000, "sample rate in Hz")
	block := flag.Int("block", 256, "engine block size in frames")
	buffer := flag.Int("buffer", 1024, "device buffer size in frames")
	bpm := flag.Float64("bpm", bass.DefaultTempo, "tempo for the arpeggiator")
	port := flag.String("midi", "", "MIDI input port name fragment (empty: first port)")
	noMIDI := flag.Bool("no-midi", false, "run without MIDI input")
	channel := flag.Int("channel", midiin.Omni, "MIDI channel 0-15, or -1 for omni")
	presetDir := flag.String("presets", "", "directory of user preset files (watched)")
	presetName := flag.String("preset", "Init", "preset to load at startup")
	serveMCP := flag.Bool("mcp", false, "serve MCP tools on stdio")
	listPorts := flag.Bool("ports", false, "list MIDI input ports and exit")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*debug)
	defer midi.CloseDriver()

	if *listPorts {
		for i, in := range midi.GetInPorts() {
			fmt.Printf("%d\t%s\n", i, in.String())
		}
		return
	}

	if err := run(logger, config{
		sampleRate: *sampleRate,
		block:      *block,
		buffer:     *buffer,
		bpm:        *bpm,
		port:       *port,
		noMIDI:     *noMIDI,
		channel:    *channel,
		presetDir:  *presetDir,
		presetName: *presetName,
		serveMCP:   *serveMCP,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "basslive: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	sampleRate int
	block      int
	buffer     int
	bpm        float64
	port       string
	noMIDI     bool
	channel    int
	presetDir  string
	presetName string
	serveMCP   bool
}

func run(logger *slog.Logger, cfg config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine, err := bass.New(core.WithSampleRate(float64(cfg.sampleRate)), core.WithBlockSize(cfg.block))
	if err != nil {
		return err
	}

	bank := preset.NewBank()
	if cfg.presetDir != "" {
		if err := os.MkdirAll(cfg.presetDir, 0o755); err != nil {
			return err
		}
		loadPresets(logger, bank, cfg.presetDir)
	}

	reg := params.NewRegistry()
	p, err := bank.SelectName(cfg.presetName)
	if err != nil {
		return err
	}
	reg.Apply(p.ApplyTo(reg.Snapshot()))
	logger.Info("preset loaded", "name", p.Name, "category", p.Category)

	queue := midiin.NewQueue(midiin.DefaultCapacity)
	queue.SetChannel(cfg.channel)

	if !cfg.noMIDI {
		in, err := midiin.FindInPort(cfg.port)
		if err != nil {
			return err
		}
		stop, err := midiin.Listen(in, queue, func(err error) {
			logger.Warn("midi input", "err", err)
		})
		if err != nil {
			return err
		}
		defer stop()
		logger.Info("listening", "port", in.String(), "channel", cfg.channel)
	}

	s := newSynth(engine, reg, queue, cfg.bpm)
	out, err := newOutput(cfg.sampleRate, cfg.buffer)
	if err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	defer out.Close()
	out.Start(s)
	logger.Info("audio started", "sample_rate", cfg.sampleRate, "block", cfg.block, "buffer", cfg.buffer)

	if cfg.presetDir != "" {
		w, err := preset.NewWatcher(cfg.presetDir)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx, func(path string) {
			logger.Debug("preset file changed", "path", path)
			loadPresets(logger, bank, cfg.presetDir)
		}, func(err error) {
			logger.Warn("preset watcher", "err", err)
		})
	}

	if cfg.serveMCP {
		c := &control{bank: bank, reg: reg, queue: queue, synth: s, dir: cfg.presetDir, logger: logger}
		errc := make(chan error, 1)
		go func() { errc <- c.serve() }()
		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
			return nil
		}
	}

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-ticker.C:
			if n := queue.Dropped(); n > 0 {
				logger.Warn("midi events dropped", "count", n)
			}
		}
	}
}

// loadPresets replaces the user presets with the contents of dir.
func loadPresets(logger *slog.Logger, bank *preset.Bank, dir string) {
	n, err := bank.LoadDir(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("preset load", "dir", dir, "err", err)
	}
	logger.Info("user presets", "dir", dir, "count", n)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
	slog.SetDefault(logger)
	return logger
}

func frameDuration(frames, sampleRate int) time.Duration {
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}
