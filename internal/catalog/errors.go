package catalog

import "errors"

// ErrEmptyCatalog indicates a catalog document without any skill.
var ErrEmptyCatalog = errors.New("catalog has no skills")

// ErrInvalidEntry indicates a skill entry that can never be matched as written
// (empty, too many words, uppercase, or irregular spacing).
var ErrInvalidEntry = errors.New("invalid catalog entry")
