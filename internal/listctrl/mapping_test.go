package listctrl

import (
	"reflect"
	"testing"

	"github.com/ytget/catalog-editor/internal/model"
)

// entryState builds test entries compactly
type entryState struct {
	translated bool
	fuzzy      bool
	invalid    bool
}

func catalogOf(states ...entryState) *model.MemoryCatalog {
	c := model.NewMemoryCatalog("de")
	for i, s := range states {
		e := model.NewEntry("source", i+1)
		e.Translated = s.translated
		if s.translated {
			e.Translation = "translation"
		}
		e.Fuzzy = s.fuzzy
		if s.invalid {
			e.Validity = model.ValidityInvalid
		} else {
			e.Validity = model.ValidityValid
		}
		c.Add(e)
	}
	return c
}

var (
	stDone         = entryState{translated: true}
	stUntranslated = entryState{}
	stInvalid      = entryState{translated: true, invalid: true}
	stFuzzy        = entryState{translated: true, fuzzy: true}
)

func TestRebuild_FourEntryScenario(t *testing.T) {
	c := catalogOf(stDone, stUntranslated, stInvalid, stFuzzy)

	m := Rebuild(c)
	expected := []int{1, 2, 3, 0}
	if got := m.DisplayToCatalog(); !reflect.DeepEqual(got, expected) {
		t.Errorf("displayToCatalog = %v, expected %v", got, expected)
	}
	if got := m.CatalogToDisplay(); !reflect.DeepEqual(got, []int{3, 0, 1, 2}) {
		t.Errorf("catalogToDisplay = %v, expected [3 0 1 2]", got)
	}
}

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		state    entryState
		expected Bucket
	}{
		{"done", stDone, BucketOther},
		{"untranslated", stUntranslated, BucketUntranslated},
		{"untranslated and invalid", entryState{invalid: true}, BucketUntranslated},
		{"untranslated and fuzzy", entryState{fuzzy: true}, BucketUntranslated},
		{"invalid", stInvalid, BucketInvalid},
		{"invalid and fuzzy", entryState{translated: true, fuzzy: true, invalid: true}, BucketInvalid},
		{"fuzzy", stFuzzy, BucketFuzzy},
	}

	for _, test := range tests {
		c := catalogOf(test.state)
		if got := Classify(c.Entry(0)); got != test.expected {
			t.Errorf("%s: Classify = %s, expected %s", test.name, got, test.expected)
		}
	}

	if Classify(nil) != BucketOther {
		t.Error("Classify(nil) should be BucketOther")
	}
}

func TestRebuild_Bijection(t *testing.T) {
	c := model.SampleCatalog(2000, 42)
	m := Rebuild(c)

	if m.Len() != c.Count() {
		t.Fatalf("Len = %d, expected %d", m.Len(), c.Count())
	}
	for i := 0; i < m.Len(); i++ {
		if got := m.DisplayIndex(m.CatalogIndex(i)); got != i {
			t.Fatalf("catalogToDisplay[displayToCatalog[%d]] = %d", i, got)
		}
		if got := m.CatalogIndex(m.DisplayIndex(i)); got != i {
			t.Fatalf("displayToCatalog[catalogToDisplay[%d]] = %d", i, got)
		}
	}
}

func TestRebuild_BucketOrder(t *testing.T) {
	c := model.SampleCatalog(2000, 3)
	m := Rebuild(c)

	prevBucket := BucketUntranslated
	prevCatalog := -1
	for row := 0; row < m.Len(); row++ {
		ci := m.CatalogIndex(row)
		b := Classify(c.Entry(ci))
		if b < prevBucket {
			t.Fatalf("row %d: bucket %s after %s", row, b, prevBucket)
		}
		if b == prevBucket && ci < prevCatalog {
			t.Fatalf("row %d: catalog order not preserved within %s (%d after %d)", row, b, ci, prevCatalog)
		}
		prevBucket, prevCatalog = b, ci
	}

	total := 0
	for b := BucketUntranslated; b < bucketCount; b++ {
		total += m.BucketSize(b)
	}
	if total != c.Count() {
		t.Errorf("Bucket sizes sum to %d, expected %d", total, c.Count())
	}
}

func TestRebuild_Idempotent(t *testing.T) {
	c := model.SampleCatalog(300, 9)
	a, b := Rebuild(c), Rebuild(c)

	if !reflect.DeepEqual(a.DisplayToCatalog(), b.DisplayToCatalog()) ||
		!reflect.DeepEqual(a.CatalogToDisplay(), b.CatalogToDisplay()) {
		t.Error("Rebuild is not idempotent")
	}
}

func TestRebuild_Empty(t *testing.T) {
	for _, c := range []model.Catalog{nil, model.NewMemoryCatalog("de")} {
		m := Rebuild(c)
		if m.Len() != 0 || len(m.DisplayToCatalog()) != 0 || len(m.CatalogToDisplay()) != 0 {
			t.Errorf("Expected empty mapping, got %d entries", m.Len())
		}
	}
}

func TestMapping_OutOfRange(t *testing.T) {
	m := Rebuild(catalogOf(stDone, stUntranslated))

	for _, idx := range []int{-1, 2, 100} {
		if got := m.CatalogIndex(idx); got != -1 {
			t.Errorf("CatalogIndex(%d) = %d, expected -1", idx, got)
		}
		if got := m.DisplayIndex(idx); got != -1 {
			t.Errorf("DisplayIndex(%d) = %d, expected -1", idx, got)
		}
	}

	var nilMapping *Mapping
	if nilMapping.CatalogIndex(0) != -1 || nilMapping.Len() != 0 {
		t.Error("nil mapping should behave as empty")
	}
}
