package phrasal

//go:generate mockgen -source=enricher.go -destination=mock_enricher.go -package=phrasal

// DefinitionEnricher attaches dictionary senses to freshly created compound
// tokens.
type DefinitionEnricher interface {
	AddDefinitions(tokens []Token, skipPointers bool) ([]Token, error)
}

// RankEnricher stamps a word-frequency rank onto tokens.
type RankEnricher interface {
	AddRank(tokens []Token, ranks RankTable) ([]Token, error)
}

// RankTable maps a normalized word or phrase to its frequency rank.
type RankTable map[string]int

// DictionaryDefinitionEnricher resolves definitions through the same kind of
// dictionary that confirms phrases.
type DictionaryDefinitionEnricher struct {
	dictionary Dictionary
}

func NewDictionaryDefinitionEnricher(dictionary Dictionary) *DictionaryDefinitionEnricher {
	return &DictionaryDefinitionEnricher{
		dictionary: dictionary,
	}
}

func (e *DictionaryDefinitionEnricher) AddDefinitions(tokens []Token, skipPointers bool) ([]Token, error) {
	r := make([]Token, len(tokens))
	for i, token := range tokens {
		definitions, err := e.dictionary.Lookup(token.Lemma, token.POS)
		if err != nil {
			return nil, err
		}
		if skipPointers {
			definitions = stripPointers(definitions)
		}
		token.Definitions = definitions
		r[i] = token
	}
	return r, nil
}

func stripPointers(definitions []Definition) []Definition {
	if len(definitions) == 0 {
		return nil
	}
	r := make([]Definition, len(definitions))
	for i, definition := range definitions {
		definition.Pointers = nil
		r[i] = definition
	}
	return r
}

// TableRankEnricher looks each token's normalized form up in the rank table
// and leaves tokens without an entry unranked.
type TableRankEnricher struct{}

func NewTableRankEnricher() TableRankEnricher {
	return TableRankEnricher{}
}

func (e TableRankEnricher) AddRank(tokens []Token, ranks RankTable) ([]Token, error) {
	r := make([]Token, len(tokens))
	for i, token := range tokens {
		if rank, ok := ranks[token.Normal]; ok {
			token.Rank = rank
		}
		r[i] = token
	}
	return r, nil
}
