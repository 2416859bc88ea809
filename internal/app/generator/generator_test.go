package generator

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/liushu-pinyin/internal/config"
	"github.com/heartmarshall/liushu-pinyin/internal/emit"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.Config {
	return config.Config{
		Log: config.LogConfig{Level: "info", Format: "text"},
		Output: config.OutputConfig{
			Format:  "rust",
			Name:    "LEGAL_PINYINS",
			Package: "pinyin",
			Order:   config.OrderSorted,
		},
	}
}

func newGenerator(t *testing.T, cfg config.Config) *Generator {
	t.Helper()
	g, err := New(testLogger(), cfg)
	require.NoError(t, err)
	return g
}

func TestNew_InvalidOutput(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Output.Format = "python"
	_, err := New(testLogger(), cfg)
	assert.Error(t, err)
}

func TestGenerate_RustTable(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, testConfig())
	var buf bytes.Buffer
	result, err := g.Generate(&buf)
	require.NoError(t, err)

	assert.Equal(t, 681, result.Count)
	assert.Equal(t, 15, result.Stats.Collapsed)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 681+2)
	assert.Equal(t, "pub const LEGAL_PINYINS: [&str; 681] = [", lines[0])
	assert.Equal(t, `    "a",`, lines[1])
	assert.Equal(t, `    "zve",`, lines[681])
	assert.Equal(t, "];", lines[682])
}

func TestGenerate_NoDuplicateLines(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Output.Order = config.OrderSet
	g := newGenerator(t, cfg)

	var buf bytes.Buffer
	_, err := g.Generate(&buf)
	require.NoError(t, err)

	seen := make(map[string]bool)
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "    ") {
			continue
		}
		assert.False(t, seen[line], "duplicate line %q", line)
		seen[line] = true
	}
	assert.Len(t, seen, 681)
}

func TestGenerate_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"rust", "go"} {
		format := format // capture per-iteration value (pre-Go 1.22 loop semantics)
		t.Run(format, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			cfg.Output.Format = format
			g := newGenerator(t, cfg)

			var buf bytes.Buffer
			_, err := g.Generate(&buf)
			require.NoError(t, err)

			lit, err := emit.Parse(emit.Format(format), &buf)
			require.NoError(t, err)
			assert.Equal(t, g.Set().Sorted(), lit.Syllables)
			assert.Equal(t, g.Set().Len(), lit.Declared)
		})
	}
}

func TestGenerate_EmptyInventory(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Inventory.Override = true
	g := newGenerator(t, cfg)

	var buf bytes.Buffer
	result, err := g.Generate(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, "pub const LEGAL_PINYINS: [&str; 0] = [\n];\n", buf.String())
}

func TestGenerate_EscapesConfiguredEntries(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Inventory = config.InventoryConfig{Override: true, Extra: []string{`a"b`, `c\d`}}
	g := newGenerator(t, cfg)

	var buf bytes.Buffer
	_, err := g.Generate(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `    "a\"b",`)
	assert.Contains(t, buf.String(), `    "c\\d",`)

	drift, err := g.Verify(&buf)
	require.NoError(t, err)
	assert.True(t, drift.Clean())
}

func TestVerify_Clean(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, testConfig())
	var buf bytes.Buffer
	_, err := g.Generate(&buf)
	require.NoError(t, err)

	drift, err := g.Verify(&buf)
	require.NoError(t, err)
	assert.True(t, drift.Clean())
	assert.Equal(t, 681, drift.Declared)
}

func TestVerify_Drift(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, testConfig())
	table := "pub const LEGAL_PINYINS: [&str; 3] = [\n" +
		"    \"ba\",\n" +
		"    \"ba\",\n" +
		"    \"xyz\",\n" +
		"];\n"

	drift, err := g.Verify(strings.NewReader(table))
	require.NoError(t, err)
	assert.False(t, drift.Clean())
	assert.Equal(t, 3, drift.Declared)
	assert.Equal(t, 681, drift.Expected)
	assert.Equal(t, []string{"ba"}, drift.Duplicates)
	assert.Equal(t, []string{"xyz"}, drift.Extra)
	assert.Len(t, drift.Missing, 680)
	assert.NotContains(t, drift.Missing, "ba")
	assert.False(t, drift.NameMismatch)
}

func TestVerify_NameMismatch(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Inventory = config.InventoryConfig{Override: true, Extra: []string{"ng"}}
	g := newGenerator(t, cfg)

	drift, err := g.Verify(strings.NewReader("pub const OTHER: [&str; 1] = [\n    \"ng\",\n];\n"))
	require.NoError(t, err)
	assert.True(t, drift.NameMismatch)
	assert.False(t, drift.Clean())
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, testConfig())
	_, err := g.Verify(strings.NewReader("not a table"))
	assert.ErrorIs(t, err, emit.ErrMalformed)
}

func TestGenerator_Split(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, testConfig())
	assert.Equal(t, [][]string{{"ni", "hao", "a"}, {"ni", "ha", "o", "a"}}, g.Split("nihaoa"))
}
