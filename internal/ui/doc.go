package ui

// Package ui contains the Fyne desktop front end of the catalog editor.
// EditorList renders a catalog as a virtual list with status icons and
// state-dependent row styles; EditorUI wraps it in a window with menus, an
// entry detail panel and a status bar. All UI strings are localized via
// Localization.
