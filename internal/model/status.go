package model

import "strconv"

// Validity represents the result of the last format check of a translation
type Validity string

const (
	// ValidityUnknown means the entry was never checked
	ValidityUnknown Validity = "Unknown"

	// ValidityValid means the translation passed the check
	ValidityValid Validity = "Valid"

	// ValidityInvalid means the translation failed the check
	ValidityInvalid Validity = "Invalid"
)

// String returns the string representation of Validity
func (v Validity) String() string {
	return string(v)
}

// Bookmark is a quick-jump slot assigned to an entry
type Bookmark int

const (
	// NoBookmark marks an entry without a bookmark slot
	NoBookmark Bookmark = -1

	// MaxBookmark is the highest bookmark slot
	MaxBookmark Bookmark = 9
)

// IsSet returns true if the bookmark refers to a slot 0..9
func (b Bookmark) IsSet() bool {
	return b >= 0 && b <= MaxBookmark
}

// String returns the slot digit, or an empty string for NoBookmark
func (b Bookmark) String() string {
	if !b.IsSet() {
		return ""
	}
	return strconv.Itoa(int(b))
}
