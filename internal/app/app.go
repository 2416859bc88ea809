package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/liushu-pinyin/internal/app/generator"
	"github.com/heartmarshall/liushu-pinyin/internal/config"
)

// ErrDrift is returned by Run in verify mode when the checked table does
// not match the current syllable set.
var ErrDrift = errors.New("table out of date")

// Options selects what Run does. With neither VerifyPath nor SplitWord
// set, Run writes the table.
type Options struct {
	ConfigPath string
	VerifyPath string
	SplitWord  string
}

// Run is the application entry point. It loads configuration, initializes
// the logger, and performs the requested action, writing results to stdout.
func Run(opts Options, stdout io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Debug("starting legal-pinyins",
		slog.String("version", BuildVersion()),
		slog.String("format", cfg.Output.Format),
		slog.String("order", cfg.Output.Order),
	)

	gen, err := generator.New(logger, *cfg)
	if err != nil {
		return err
	}

	switch {
	case opts.VerifyPath != "":
		return verify(gen, opts.VerifyPath)
	case opts.SplitWord != "":
		for _, seg := range gen.Split(opts.SplitWord) {
			if _, err := fmt.Fprintln(stdout, strings.Join(seg, " ")); err != nil {
				return fmt.Errorf("write segmentation: %w", err)
			}
		}
		return nil
	default:
		_, err := gen.Generate(stdout)
		return err
	}
}

func verify(gen *generator.Generator, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	drift, err := gen.Verify(f)
	if err != nil {
		return err
	}
	if !drift.Clean() {
		return fmt.Errorf("%s: %w", path, ErrDrift)
	}
	return nil
}
