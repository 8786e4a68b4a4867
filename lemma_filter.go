package phrasal

import "github.com/kljensen/snowball/english"

// LemmaFilter backfills missing lemmas with an English stem, so streams from
// upstreams that tag but do not lemmatize still reach the dictionary with a
// usable base form. Tokens that already carry a lemma pass through as is.
type LemmaFilter struct{}

func NewLemmaFilter() LemmaFilter {
	return LemmaFilter{}
}

func (f LemmaFilter) Process(tokenStream *TokenStream) (*TokenStream, error) {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Lemma == "" {
			surface := token.Normal
			if surface == "" {
				surface = token.Value
			}
			token.Lemma = english.Stem(surface, false)
		}
		r[i] = token
	}
	return NewTokenStream(r), nil
}
