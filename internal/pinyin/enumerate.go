package pinyin

// Stats counts the candidates each phase produced.
type Stats struct {
	Pairs     int // consonant+rhyme concatenations
	Integral  int
	Extra     int
	Collapsed int // candidates that were already in the set
}

// Enumerate builds the set of legal syllables from inv: every consonant
// joined with every rhyme, then the integral syllables, then the extras.
func Enumerate(inv Inventory) (*Set, Stats) {
	set := NewSet()
	var stats Stats

	add := func(v string, counter *int) {
		*counter++
		if !set.Add(v) {
			stats.Collapsed++
		}
	}

	for _, c := range inv.Consonants {
		for _, r := range inv.Rhymes {
			add(c+r, &stats.Pairs)
		}
	}
	for _, v := range inv.Integral {
		add(v, &stats.Integral)
	}
	for _, v := range inv.Extra {
		add(v, &stats.Extra)
	}

	return set, stats
}

// Legal returns the syllables produced by the default inventory.
func Legal() *Set {
	set, _ := Enumerate(DefaultInventory())
	return set
}
