package phrasal

import "strings"

//go:generate mockgen -source=dictionary.go -destination=mock_dictionary.go -package=phrasal

// Definition is one dictionary sense of a phrase.
type Definition struct {
	POS      string
	Gloss    string
	Pointers []string // related entries, e.g. synonyms or see-also phrases
}

// Dictionary resolves a phrase and a part-of-speech tag to its senses.
// A nil result with a nil error means the phrase is not in the dictionary.
type Dictionary interface {
	Lookup(phrase string, pos string) ([]Definition, error)
}

// MemoryDictionary is a map-backed Dictionary for small embedded
// dictionaries and tests.
type MemoryDictionary struct {
	entries map[string][]Definition
}

func NewMemoryDictionary(entries map[string][]Definition) *MemoryDictionary {
	return &MemoryDictionary{
		entries: entries,
	}
}

func (d *MemoryDictionary) Lookup(phrase string, pos string) ([]Definition, error) {
	definitions := make([]Definition, 0, len(d.entries[phrase]))
	for _, definition := range d.entries[phrase] {
		// An entry tagged "VB" covers every inflected verb tag (VBD, VBZ, ...).
		if definition.POS != "" && !strings.HasPrefix(pos, definition.POS) {
			continue
		}
		definitions = append(definitions, definition)
	}
	if len(definitions) == 0 {
		return nil, nil
	}
	return definitions, nil
}
