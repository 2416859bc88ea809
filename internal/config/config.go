package config

import "github.com/heartmarshall/liushu-pinyin/internal/pinyin"

// Config is the root generator configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Inventory InventoryConfig `yaml:"inventory"`
	Output    OutputConfig    `yaml:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// InventoryConfig replaces the built-in syllable lists.
// A list left unset keeps its built-in value unless Override is true,
// in which case every list is used exactly as given, empty or not.
type InventoryConfig struct {
	Consonants []string `yaml:"consonants" env:"PINYIN_CONSONANTS" env-separator:","`
	Rhymes     []string `yaml:"rhymes"     env:"PINYIN_RHYMES"     env-separator:","`
	Integral   []string `yaml:"integral"   env:"PINYIN_INTEGRAL"   env-separator:","`
	Extra      []string `yaml:"extra"      env:"PINYIN_EXTRA"      env-separator:","`
	Override   bool     `yaml:"override"   env:"PINYIN_OVERRIDE"`
}

// OutputConfig controls how the table is rendered.
type OutputConfig struct {
	Format  string `yaml:"format"  env:"PINYIN_FORMAT"  env-default:"rust"`
	Name    string `yaml:"name"    env:"PINYIN_NAME"    env-default:"LEGAL_PINYINS"`
	Package string `yaml:"package" env:"PINYIN_PACKAGE" env-default:"pinyin"`
	Order   string `yaml:"order"   env:"PINYIN_ORDER"   env-default:"sorted"`
}

// Output orders.
const (
	OrderSorted = "sorted"
	OrderSet    = "set"
)

// ToInventory merges the configured lists over the built-in ones.
func (c InventoryConfig) ToInventory() pinyin.Inventory {
	if c.Override {
		return pinyin.Inventory{
			Consonants: c.Consonants,
			Rhymes:     c.Rhymes,
			Integral:   c.Integral,
			Extra:      c.Extra,
		}
	}

	inv := pinyin.DefaultInventory()
	if c.Consonants != nil {
		inv.Consonants = c.Consonants
	}
	if c.Rhymes != nil {
		inv.Rhymes = c.Rhymes
	}
	if c.Integral != nil {
		inv.Integral = c.Integral
	}
	if c.Extra != nil {
		inv.Extra = c.Extra
	}
	return inv
}
