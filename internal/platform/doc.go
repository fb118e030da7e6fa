package platform

// Package platform contains OS integration: resolving user supplied
// directories and revealing them in the system file manager.
