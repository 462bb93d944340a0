package basket

import "errors"

var (
	// ErrBlankItem indicates an item label that is empty (or whitespace-only).
	ErrBlankItem = errors.New("basket: blank item label")
	// ErrRaggedRow indicates a pre-encoded row whose width differs from the universe.
	ErrRaggedRow = errors.New("basket: row width does not match universe")
	// ErrUniverseOrder indicates a pre-encoded universe that is not strictly sorted.
	ErrUniverseOrder = errors.New("basket: universe must be strictly sorted and duplicate-free")
)
