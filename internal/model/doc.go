package model

// Package model defines the catalog data structures shown by the editor list:
// translation entries, their status flags, and the catalog collection that
// owns them. Entries are read-only to the list control.
