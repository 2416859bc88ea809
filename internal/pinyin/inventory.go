// Package pinyin enumerates legal Mandarin pinyin syllables and segments
// unspaced pinyin input against them.
// Pure functions over in-memory lists. No I/O.
package pinyin

import (
	"slices"
	"strings"
)

var (
	defaultConsonants = strings.Split("b,p,m,f,d,t,n,l,g,k,h,j,q,x,z,c,s,r,zh,ch,sh,y,w", ",")
	defaultRhymes     = strings.Split("a,o,e,i,u,v,ai,ei,ui,ao,ou,iu,ie,ve,er,an,en,in,un,ang,eng,ing,ong,uai,ia,uan,uang,uo,ua", ",")
	defaultIntegral   = strings.Split("a,o,e,ai,ei,ao,ou,er,an,en,ang,zi,ci,si,zhi,chi,shi,ri,yi,wu,yu,yin,ying,yun,ye,yue,yuan", ",")
	defaultExtra      = strings.Split("ng,hng", ",")
)

// Inventory holds the lists syllables are built from.
type Inventory struct {
	Consonants []string // initials, e.g. "b", "zh"
	Rhymes     []string // finals, e.g. "ang", "uo"
	Integral   []string // standalone syllables, e.g. "yi", "wu"
	Extra      []string // nasal interjections "ng" and "hng"
}

// DefaultInventory returns the built-in lists. Each call returns fresh
// slices, so callers may modify the result.
func DefaultInventory() Inventory {
	return Inventory{
		Consonants: slices.Clone(defaultConsonants),
		Rhymes:     slices.Clone(defaultRhymes),
		Integral:   slices.Clone(defaultIntegral),
		Extra:      slices.Clone(defaultExtra),
	}
}

// RawSize is the number of candidates Enumerate produces before
// duplicates collapse.
func (inv Inventory) RawSize() int {
	return len(inv.Consonants)*len(inv.Rhymes) + len(inv.Integral) + len(inv.Extra)
}
