package listctrl

import "github.com/ytget/catalog-editor/internal/model"

// Bucket is a display priority group. Buckets are shown in declaration order.
type Bucket int

const (
	BucketUntranslated Bucket = iota
	BucketInvalid
	BucketFuzzy
	BucketOther

	bucketCount
)

// String returns the bucket name
func (b Bucket) String() string {
	switch b {
	case BucketUntranslated:
		return "Untranslated"
	case BucketInvalid:
		return "Invalid"
	case BucketFuzzy:
		return "Fuzzy"
	case BucketOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Classify returns the bucket of e. Precedence is
// untranslated > invalid > fuzzy > other.
func Classify(e *model.Entry) Bucket {
	switch {
	case e == nil:
		return BucketOther
	case !e.IsTranslated():
		return BucketUntranslated
	case e.IsInvalid():
		return BucketInvalid
	case e.IsFuzzy():
		return BucketFuzzy
	default:
		return BucketOther
	}
}

// Mapping translates between catalog indices and display rows.
// Both directions are built together and never updated in place.
type Mapping struct {
	displayToCatalog []int
	catalogToDisplay []int
	bucketSizes      [bucketCount]int
}

// Rebuild buckets the entries of c into display order. A nil catalog
// yields an empty mapping.
func Rebuild(c model.Catalog) *Mapping {
	m := &Mapping{}
	if c == nil {
		return m
	}

	n := c.Count()
	var buckets [bucketCount][]int
	for i := 0; i < n; i++ {
		b := Classify(c.Entry(i))
		buckets[b] = append(buckets[b], i)
	}

	m.displayToCatalog = make([]int, 0, n)
	m.catalogToDisplay = make([]int, n)
	for b, ids := range buckets {
		m.bucketSizes[b] = len(ids)
		for _, ci := range ids {
			m.catalogToDisplay[ci] = len(m.displayToCatalog)
			m.displayToCatalog = append(m.displayToCatalog, ci)
		}
	}
	return m
}

// Len returns the number of mapped entries
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.displayToCatalog)
}

// CatalogIndex returns the catalog index shown at display row, or -1
func (m *Mapping) CatalogIndex(display int) int {
	if m == nil || display < 0 || display >= len(m.displayToCatalog) {
		return -1
	}
	return m.displayToCatalog[display]
}

// DisplayIndex returns the display row of a catalog index, or -1
func (m *Mapping) DisplayIndex(catalog int) int {
	if m == nil || catalog < 0 || catalog >= len(m.catalogToDisplay) {
		return -1
	}
	return m.catalogToDisplay[catalog]
}

// DisplayToCatalog returns a copy of the display → catalog array
func (m *Mapping) DisplayToCatalog() []int {
	if m == nil {
		return []int{}
	}
	return append([]int{}, m.displayToCatalog...)
}

// CatalogToDisplay returns a copy of the catalog → display array
func (m *Mapping) CatalogToDisplay() []int {
	if m == nil {
		return []int{}
	}
	return append([]int{}, m.catalogToDisplay...)
}

// BucketSize returns how many entries fell into b
func (m *Mapping) BucketSize(b Bucket) int {
	if m == nil || b < 0 || b >= bucketCount {
		return 0
	}
	return m.bucketSizes[b]
}
