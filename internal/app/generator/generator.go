// Package generator builds the legal pinyin table from configuration and
// writes it as an array literal. It also checks previously generated
// tables for drift and segments pinyin input against the same set.
package generator

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/liushu-pinyin/internal/config"
	"github.com/heartmarshall/liushu-pinyin/internal/emit"
	"github.com/heartmarshall/liushu-pinyin/internal/pinyin"
)

// Result summarizes one Generate call.
type Result struct {
	Count    int
	Stats    pinyin.Stats
	Duration time.Duration
}

// Generator owns the syllable set for one configuration.
type Generator struct {
	log     *slog.Logger
	cfg     config.Config
	emitter *emit.Emitter
	set     *pinyin.Set
	stats   pinyin.Stats
}

// New enumerates the configured inventory and prepares the emitter.
func New(log *slog.Logger, cfg config.Config) (*Generator, error) {
	emitter, err := emit.New(emit.Options{
		Format:  emit.Format(cfg.Output.Format),
		Name:    cfg.Output.Name,
		Package: cfg.Output.Package,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	inv := cfg.Inventory.ToInventory()
	set, stats := pinyin.Enumerate(inv)
	log.Debug("syllables enumerated",
		slog.Int("consonants", len(inv.Consonants)),
		slog.Int("rhymes", len(inv.Rhymes)),
		slog.Int("integral", len(inv.Integral)),
		slog.Int("extra", len(inv.Extra)),
		slog.Int("unique", set.Len()),
		slog.Int("collapsed", stats.Collapsed),
	)
	if set.Len() == 0 {
		log.Warn("inventory produced no syllables; emitting an empty table")
	}

	return &Generator{
		log:     log,
		cfg:     cfg,
		emitter: emitter,
		set:     set,
		stats:   stats,
	}, nil
}

// Set returns the enumerated syllables.
func (g *Generator) Set() *pinyin.Set {
	return g.set
}

// Syllables returns the set in the configured output order.
func (g *Generator) Syllables() []string {
	if g.cfg.Output.Order == config.OrderSet {
		return g.set.Elements()
	}
	return g.set.Sorted()
}

// Generate writes the table literal to w.
func (g *Generator) Generate(w io.Writer) (Result, error) {
	start := time.Now()

	syllables := g.Syllables()
	if err := g.emitter.Emit(w, syllables); err != nil {
		return Result{}, err
	}

	result := Result{
		Count:    len(syllables),
		Stats:    g.stats,
		Duration: time.Since(start),
	}
	g.log.Info("table generated",
		slog.String("format", g.cfg.Output.Format),
		slog.String("name", g.cfg.Output.Name),
		slog.Int("count", result.Count),
		slog.Int("collapsed", result.Stats.Collapsed),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// Split returns every segmentation of word into legal syllables,
// fewest syllables first.
func (g *Generator) Split(word string) [][]string {
	segs := pinyin.Split(word, g.set)
	g.log.Debug("split", slog.String("word", word), slog.Int("segmentations", len(segs)))
	return segs
}
