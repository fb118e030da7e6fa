package model

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Catalog is the ordered collection of entries the list control reads from.
// Entry indices are stable for the lifetime of a catalog snapshot.
type Catalog interface {
	Count() int
	Entry(i int) *Entry
}

// Stats holds per-status entry counts of a catalog
type Stats struct {
	Total        int
	Untranslated int
	Invalid      int
	Fuzzy        int
	Bookmarked   int
}

// MemoryCatalog is a Catalog kept entirely in memory
type MemoryCatalog struct {
	ID        string
	Language  string
	entries   []*Entry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMemoryCatalog creates an empty catalog for the given language
func NewMemoryCatalog(language string) *MemoryCatalog {
	now := time.Now()
	return &MemoryCatalog{
		ID:        uuid.NewString(),
		Language:  language,
		entries:   make([]*Entry, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add appends an entry and returns its catalog index
func (c *MemoryCatalog) Add(e *Entry) int {
	c.entries = append(c.entries, e)
	c.UpdatedAt = time.Now()
	return len(c.entries) - 1
}

// Count returns the number of entries
func (c *MemoryCatalog) Count() int {
	return len(c.entries)
}

// Entry returns the entry at catalog index i, or nil if i is out of range
func (c *MemoryCatalog) Entry(i int) *Entry {
	if i < 0 || i >= len(c.entries) {
		return nil
	}
	return c.entries[i]
}

// Stats counts entries per status. Categories overlap: a fuzzy entry with
// an invalid translation is counted in both.
func (c *MemoryCatalog) Stats() Stats {
	return CountStats(c)
}

// CountStats computes Stats for any Catalog
func CountStats(c Catalog) Stats {
	var s Stats
	if c == nil {
		return s
	}
	s.Total = c.Count()
	for i := 0; i < s.Total; i++ {
		e := c.Entry(i)
		if e == nil {
			continue
		}
		if !e.IsTranslated() {
			s.Untranslated++
		}
		if e.IsInvalid() {
			s.Invalid++
		}
		if e.IsFuzzy() {
			s.Fuzzy++
		}
		if e.Bookmark.IsSet() {
			s.Bookmarked++
		}
	}
	return s
}

// Sample catalog generation probabilities
const (
	sampleUntranslatedRate = 0.2
	sampleFuzzyRate        = 0.15
	sampleInvalidRate      = 0.05
	sampleAutomaticRate    = 0.3
	sampleCommentRate      = 0.1
	sampleBookmarkRate     = 0.02
)

var sampleWords = []string{
	"Open", "Save", "file", "catalog", "translation", "Cannot", "read", "the",
	"settings", "window", "entry", "%d items", "Preferences", "Quit", "Help",
	"About", "%s not found", "Cancel", "Apply", "Show", "line numbers",
}

// SampleCatalog generates a deterministic catalog with n entries covering
// every status combination. The same seed always yields the same catalog.
func SampleCatalog(n int, seed uint64) *MemoryCatalog {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	c := NewMemoryCatalog("xx")
	line := 1
	for i := 0; i < n; i++ {
		words := 2 + r.IntN(8)
		source := ""
		for w := 0; w < words; w++ {
			if w > 0 {
				source += " "
			}
			source += sampleWords[r.IntN(len(sampleWords))]
		}

		e := NewEntry(source, line)
		line += 1 + r.IntN(20)

		if r.Float64() >= sampleUntranslatedRate {
			e.Translated = true
			e.Translation = fmt.Sprintf("[%d] %s", i, source)
			if r.Float64() < sampleFuzzyRate {
				e.Fuzzy = true
			}
			if r.Float64() < sampleInvalidRate {
				e.Validity = ValidityInvalid
			} else {
				e.Validity = ValidityValid
			}
		}
		e.Automatic = r.Float64() < sampleAutomaticRate
		if r.Float64() < sampleCommentRate {
			e.Comment = "check context"
		}
		if r.Float64() < sampleBookmarkRate {
			e.Bookmark = Bookmark(r.IntN(int(MaxBookmark) + 1))
		}
		c.Add(e)
	}
	return c
}
