// Command bassrender renders a held chord through the bass engine into a
// WAV file and reports its level and dominant frequency.
//
// Usage:
//
//	bassrender [flags]
//
// Examples:
//
//	bassrender -out sub.wav -preset "Deep Sub" -notes 36
//	bassrender -out acid.wav -preset "303 Acid" -notes 36,48 -arp -bpm 132 -len 4
//	bassrender -set filter_cutoff=1200 -set drive=0.6 -notes 40
//	bassrender -list
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-bass/analysis"
	"github.com/cwbudde/algo-bass/bass"
	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/cwbudde/algo-bass/dsp/effects"
	"github.com/cwbudde/algo-bass/internal/render"
	"github.com/cwbudde/algo-bass/params"
	"github.com/cwbudde/algo-bass/preset"
)

func main() {
	out := flag.String("out", "bass.wav", "output WAV path")
	sampleRate := flag.Int("sr", 48000, "sample rate in Hz")
	bpm := flag.Float64("bpm", bass.DefaultTempo, "tempo for the arpeggiator")
	presetName := flag.String("preset", "Init", "factory or user preset name")
	presetDir := flag.String("presets", "", "directory of user preset files")
	notes := flag.String("notes", "36", "comma-separated MIDI notes to hold")
	velocity := flag.Float64("vel", 1, "note velocity in (0, 1]")
	length := flag.Float64("len", 2, "rendering length in seconds")
	gate := flag.Float64("gate", 1, "seconds before the notes are released")
	arp := flag.Bool("arp", false, "enable the arpeggiator")
	block := flag.Int("block", 512, "processing block size in frames")
	list := flag.Bool("list", false, "list presets and parameters, then exit")
	debug := flag.Bool("debug", false, "enable debug logging")

	var overrides []string
	flag.Func("set", "parameter override name=value (repeatable)", func(s string) error {
		overrides = append(overrides, s)
		return nil
	})
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bassrender [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a held chord through the bass engine into a WAV file.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := newLogger(*debug)

	bank := preset.NewBank()
	if *presetDir != "" {
		n, err := bank.LoadDir(*presetDir)
		if err != nil {
			logger.Warn("some preset files failed to load", "dir", *presetDir, "err", err)
		}
		logger.Debug("user presets loaded", "dir", *presetDir, "count", n)
	}

	if *list {
		printPresets(bank)
		printParams()
		return
	}

	reg := params.NewRegistry()
	p, err := bank.SelectName(*presetName)
	if err != nil {
		fatalf("%v", err)
	}
	reg.Apply(p.ApplyTo(reg.Snapshot()))
	if *arp {
		if _, err := reg.Set("arp_on", 1); err != nil {
			fatalf("%v", err)
		}
	}
	for _, o := range overrides {
		name, value, ok := strings.Cut(o, "=")
		if !ok {
			fatalf("override %q: want name=value", o)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			fatalf("override %q: %v", o, err)
		}
		stored, err := reg.Set(strings.TrimSpace(name), v)
		if err != nil {
			fatalf("override %q: %v", o, err)
		}
		logger.Debug("parameter override", "name", name, "value", stored)
	}

	noteList, err := render.ParseNotes(*notes)
	if err != nil {
		fatalf("%v", err)
	}

	e, err := bass.New(core.WithSampleRate(float64(*sampleRate)), core.WithBlockSize(*block))
	if err != nil {
		fatalf("%v", err)
	}

	score := render.Score{Notes: noteList, Velocity: *velocity, Gate: *gate, Length: *length, Tempo: *bpm}
	logger.Info("rendering", "preset", p.Name, "notes", noteList, "seconds", *length, "sample_rate", *sampleRate, "arp", *arp)

	left, right, err := render.Render(e, reg.Snapshot(), score, *block)
	if err != nil {
		fatalf("%v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		fatalf("%v", err)
	}
	if err := render.WriteWAV(f, *sampleRate, left, right); err != nil {
		f.Close()
		fatalf("%v", err)
	}
	if err := f.Close(); err != nil {
		fatalf("%v", err)
	}

	report(logger, left, float64(*sampleRate), *gate)
	if *debug {
		reportTone(logger, float64(*sampleRate), reg.Snapshot().LowBoost)
	}
	logger.Info("wrote", "path", *out, "frames", len(left))
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

func report(logger *slog.Logger, left []float64, sampleRate, gate float64) {
	lvl := analysis.Measure(left)
	logger.Info("level",
		"peak_dbfs", fmt.Sprintf("%.2f", analysis.DBFS(lvl.Peak)),
		"rms_dbfs", fmt.Sprintf("%.2f", analysis.DBFS(lvl.RMS)))

	held := left[:min(len(left), int(gate*sampleRate))]
	if len(held) == 0 {
		return
	}
	spec, err := analysis.Spectrum(held, sampleRate)
	if err != nil {
		logger.Warn("spectrum failed", "err", err)
		return
	}
	logger.Info("spectrum", "peak_hz", fmt.Sprintf("%.1f", spec.PeakFrequency(20, sampleRate/2)))
}

// reportTone logs the low-shelf gain the patch applies around its corner.
func reportTone(logger *slog.Logger, sampleRate, boost float64) {
	shelf, err := effects.NewLowShelf(sampleRate)
	if err != nil {
		logger.Warn("low shelf", "err", err)
		return
	}
	shelf.SetBoost(boost)
	logger.Debug("low shelf",
		"boost", boost,
		"db_50hz", fmt.Sprintf("%+.2f", shelf.ResponseDB(50)),
		"db_100hz", fmt.Sprintf("%+.2f", shelf.ResponseDB(effects.LowShelfFrequency)),
		"db_200hz", fmt.Sprintf("%+.2f", shelf.ResponseDB(200)))
}

func printPresets(bank *preset.Bank) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPRESET\tCATEGORY")
	for i, p := range bank.List() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, p.Name, p.Category)
	}
	tw.Flush()
	fmt.Println()
}

func printParams() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABEL\tMIN\tMAX\tDEFAULT")
	for _, s := range bass.ParamSpecs() {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\n", s.ID, s.Label, s.Min, s.Max, s.Default)
	}
	tw.Flush()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "bassrender: "+format+"\n", args...)
	os.Exit(1)
}
