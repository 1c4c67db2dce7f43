/*
Package griddict implements the normalized word set and prefix trie that
back the enumerator's dictionary-membership and prefix-pruning queries.

The underlying data structure is the go-patricia radix trie, the same one
the completion engine this code descends from used for prefix lookups.
Here it stores no frequency payload — membership is boolean, so every
insert carries a fixed sentinel item and `HasPrefix` only needs to know
whether `VisitSubtree` finds anything at all, not rank or sort the matches.

	dict := griddict.Build([]string{"cats", "dogs", "ants"})
	dict.Contains("CATS")   // true
	dict.HasPrefix("CA")    // true
	dict.HasPrefix("ZQ")    // false

# Reload

A Dictionary is built once per session and only mutated by an explicit
Reload, which rebuilds the trie and word set from scratch and swaps them
in under a write lock — the same rebuild-not-patch strategy the chunked
dictionary loader used when chunks were evicted.
*/
package griddict

import (
	"errors"
	"strings"
	"sync"

	"github.com/bastiangx/strandsolve/internal/logger"
	"github.com/tchap/go-patricia/v2/patricia"
)

var log = logger.Default("griddict")

// present is the sentinel trie payload; membership is boolean here, not
// frequency-ranked, so every insert carries the same item.
var present = struct{}{}

// minWordLen is the shortest word griddict will ever index, per spec.
const minWordLen = 4

// Dictionary holds a normalized word set and a prefix trie over it.
// A word is in the set iff it is in the trie and iff the trie traversal
// ends on a terminal node; words below minWordLen never go in.
type Dictionary struct {
	mu    sync.RWMutex
	trie  *patricia.Trie
	words map[string]struct{}
}

// Build normalizes and indexes rawLines into a new Dictionary. Each line
// is trimmed, uppercased, and dropped if it contains any non-A-Z byte or
// is shorter than 4 characters. Duplicate lines are idempotent. Empty
// input yields an empty dictionary where every query returns false.
func Build(rawLines []string) *Dictionary {
	d := &Dictionary{
		trie:  patricia.NewTrie(),
		words: make(map[string]struct{}),
	}
	d.index(rawLines)
	return d
}

// Reload rebuilds the dictionary from rawLines in place, replacing the
// previous trie and word set atomically under a write lock.
func (d *Dictionary) Reload(rawLines []string) {
	fresh := Build(rawLines)

	d.mu.Lock()
	d.trie, d.words = fresh.trie, fresh.words
	d.mu.Unlock()

	log.Debugf("dictionary reloaded: %d words", len(fresh.words))
}

func (d *Dictionary) index(rawLines []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, raw := range rawLines {
		word := normalize(raw)
		if word == "" {
			continue
		}
		if _, ok := d.words[word]; ok {
			continue
		}
		d.words[word] = struct{}{}
		d.trie.Insert(patricia.Prefix(word), present)
	}
}

// normalize trims and uppercases s, returning "" if the result is too
// short or contains anything outside A-Z.
func normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < minWordLen {
		return ""
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return ""
		}
	}
	return s
}

// Contains reports exact membership.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.words[word]
	return ok
}

// errFound is used as a VisitSubtree sentinel to short-circuit traversal
// as soon as a single match is seen; HasPrefix never needs more than one.
var errFound = errors.New("griddict: match found")

// HasPrefix reports whether any indexed word has prefix as a proper or
// improper prefix, including prefix itself being a word. Returns true at
// internal trie nodes regardless of their terminal flag.
func (d *Dictionary) HasPrefix(prefix string) bool {
	if prefix == "" {
		return d.Len() > 0
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	err := d.trie.VisitSubtree(patricia.Prefix(prefix), func(patricia.Prefix, patricia.Item) error {
		return errFound
	})
	if err != nil && err != errFound {
		log.Errorf("error visiting trie subtree for prefix %q: %v", prefix, err)
		return false
	}
	return err == errFound
}

// Len reports how many words are indexed.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}
