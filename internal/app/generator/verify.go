package generator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/liushu-pinyin/internal/emit"
)

// Drift describes how a generated table differs from the current set.
type Drift struct {
	Name         string
	Declared     int
	Expected     int
	Missing      []string // in the set, absent from the table
	Extra        []string // in the table, absent from the set
	Duplicates   []string // listed more than once in the table
	NameMismatch bool
}

// Clean reports whether the table matches the set exactly.
func (d Drift) Clean() bool {
	return d.Declared == d.Expected &&
		len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Duplicates) == 0 &&
		!d.NameMismatch
}

// Verify parses a table in the configured format from r and compares it
// with the enumerated set. Element order is ignored.
func (g *Generator) Verify(r io.Reader) (Drift, error) {
	lit, err := emit.Parse(emit.Format(g.cfg.Output.Format), r)
	if err != nil {
		return Drift{}, fmt.Errorf("generator: verify: %w", err)
	}

	d := Drift{
		Name:         lit.Name,
		Declared:     lit.Declared,
		Expected:     g.set.Len(),
		NameMismatch: lit.Name != g.cfg.Output.Name,
	}

	seen := make(map[string]int, len(lit.Syllables))
	for _, s := range lit.Syllables {
		seen[s]++
		switch {
		case seen[s] == 2:
			d.Duplicates = append(d.Duplicates, s)
		case seen[s] == 1 && !g.set.Contains(s):
			d.Extra = append(d.Extra, s)
		}
	}
	for _, s := range g.set.Sorted() {
		if seen[s] == 0 {
			d.Missing = append(d.Missing, s)
		}
	}

	if d.Clean() {
		g.log.Info("table up to date", slog.String("name", d.Name), slog.Int("count", d.Declared))
	} else {
		g.log.Warn("table drift",
			slog.String("name", d.Name),
			slog.Int("declared", d.Declared),
			slog.Int("expected", d.Expected),
			slog.Any("missing", d.Missing),
			slog.Any("extra", d.Extra),
			slog.Any("duplicates", d.Duplicates),
			slog.Bool("name_mismatch", d.NameMismatch),
		)
	}
	return d, nil
}
