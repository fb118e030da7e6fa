package model

import "strings"

// Entry represents a single translation unit of a catalog
type Entry struct {
	Source      string   // original string (msgid)
	Translation string   // translated string, empty if untranslated
	Line        int      // line number in the source file
	Translated  bool     // entry carries a translation
	Fuzzy       bool     // translation needs review
	Validity    Validity // result of the last format check
	Automatic   bool     // entry has automatic (extracted) comments
	Comment     string   // translator comment
	Modified    bool     // entry was changed in this session
	Bookmark    Bookmark // bookmark slot or NoBookmark
}

// NewEntry creates an untranslated entry for the given source string
func NewEntry(source string, line int) *Entry {
	return &Entry{
		Source:   source,
		Line:     line,
		Validity: ValidityUnknown,
		Bookmark: NoBookmark,
	}
}

// IsTranslated returns true if the entry carries a translation
func (e *Entry) IsTranslated() bool {
	return e.Translated
}

// IsFuzzy returns true if the translation is marked as needing review
func (e *Entry) IsFuzzy() bool {
	return e.Fuzzy
}

// IsInvalid returns true if the last format check failed
func (e *Entry) IsInvalid() bool {
	return e.Validity == ValidityInvalid
}

// IsAutomatic returns true if the entry has automatic comments
func (e *Entry) IsAutomatic() bool {
	return e.Automatic
}

// HasComment returns true if a translator comment is present
func (e *Entry) HasComment() bool {
	return strings.TrimSpace(e.Comment) != ""
}

// IsModified returns true if the entry changed since the catalog was loaded
func (e *Entry) IsModified() bool {
	return e.Modified
}

// SetTranslation stores a translation and updates the derived flags.
// An empty translation turns the entry back into an untranslated one.
func (e *Entry) SetTranslation(translation string) {
	e.Translation = translation
	e.Translated = translation != ""
	e.Validity = ValidityUnknown
	e.Modified = true
}

// SetFuzzy updates the fuzzy flag
func (e *Entry) SetFuzzy(fuzzy bool) {
	if e.Fuzzy == fuzzy {
		return
	}
	e.Fuzzy = fuzzy
	e.Modified = true
}

// SetBookmark assigns a bookmark slot; values outside 0..9 clear it
func (e *Entry) SetBookmark(b Bookmark) {
	if !b.IsSet() {
		b = NoBookmark
	}
	e.Bookmark = b
}
