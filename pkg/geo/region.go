package geo

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	SUGGEST_EDIT_DISTANCE = 2
)

// RegionIndex resolves region display names to codes. Resolution is a
// case-insensitive exact match; the fst over accent-folded names only backs
// suggestions and prefix listing.
type RegionIndex struct {
	regions []Region
	byName  map[string]int
	fst     *vellum.FST

	levMu sync.Mutex
	lev   *levenshtein.LevenshteinAutomatonBuilder
}

func NewRegionIndex(regions []Region) (*RegionIndex, error) {
	ri := &RegionIndex{
		regions: make([]Region, len(regions)),
		byName:  make(map[string]int, len(regions)),
	}
	copy(ri.regions, regions)

	folded := make([]string, 0, len(regions))
	foldedIdx := make(map[string]int, len(regions))
	for i, r := range ri.regions {
		ri.byName[strings.ToLower(r.Name)] = i
		key := FoldName(r.Name)
		if _, ok := foldedIdx[key]; ok {
			continue
		}
		foldedIdx[key] = i
		folded = append(folded, key)
	}
	// vellum wants keys in lexicographic order
	sort.Strings(folded)

	var buf bytes.Buffer
	fstBuilder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for _, key := range folded {
		if err := fstBuilder.Insert([]byte(key), uint64(foldedIdx[key])); err != nil {
			return nil, err
		}
	}
	if err := fstBuilder.Close(); err != nil {
		return nil, err
	}
	ri.fst, err = vellum.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}

	ri.lev, err = levenshtein.NewLevenshteinAutomatonBuilder(SUGGEST_EDIT_DISTANCE, false)
	if err != nil {
		return nil, err
	}
	return ri, nil
}

// Resolve returns the region whose display name equals name, ignoring case.
func (ri *RegionIndex) Resolve(name string) (Region, bool) {
	i, ok := ri.byName[strings.ToLower(name)]
	if !ok {
		return Region{}, false
	}
	return ri.regions[i], true
}

func (ri *RegionIndex) Regions() []Region {
	out := make([]Region, len(ri.regions))
	copy(out, ri.regions)
	return out
}

// Names returns display names in table order.
func (ri *RegionIndex) Names() []string {
	names := make([]string, 0, len(ri.regions))
	for _, r := range ri.regions {
		names = append(names, r.Name)
	}
	return names
}

// WithPrefix returns display names whose folded form starts with the folded prefix,
// ordered by folded name.
func (ri *RegionIndex) WithPrefix(prefix string) ([]string, error) {
	start := []byte(FoldName(prefix))
	if len(start) == 0 {
		return ri.Names(), nil
	}
	// 0xff never occurs in utf-8, so it bounds every key sharing the prefix
	end := append(append([]byte{}, start...), 0xff)

	it, err := ri.fst.Iterator(start, end)
	return ri.collect(it, err, 0)
}

// Suggest returns up to k display names within SUGGEST_EDIT_DISTANCE edits of name.
func (ri *RegionIndex) Suggest(name string, k int) []string {
	query := FoldName(name)
	if query == "" {
		return nil
	}

	ri.levMu.Lock()
	dfa, err := ri.lev.BuildDfa(query, SUGGEST_EDIT_DISTANCE)
	ri.levMu.Unlock()
	if err != nil {
		return nil
	}

	it, err := ri.fst.Search(dfa, nil, nil)
	names, err := ri.collect(it, err, k)
	if err != nil {
		return nil
	}
	return names
}

func (ri *RegionIndex) collect(it *vellum.FSTIterator, err error, k int) ([]string, error) {
	names := []string{}
	for err == nil {
		_, val := it.Current()
		names = append(names, ri.regions[val].Name)
		if k > 0 && len(names) == k {
			break
		}
		err = it.Next()
	}
	if err != nil && !errors.Is(err, vellum.ErrIteratorDone) {
		return nil, err
	}
	return names, nil
}

// FoldName lower-cases s and strips diacritics, "Córdoba" -> "cordoba".
func FoldName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
