package phrasal

// PhrasalVerbGrouper rewrites a part-of-speech-tagged token stream,
// collapsing each dictionary-confirmed verb+particle/preposition phrase into
// one compound token. It is a post-processing stage of an annotation
// pipeline: tagging, context assignment and offsets all happen upstream.
type PhrasalVerbGrouper struct {
	dictionary             Dictionary
	definitionEnricher     DefinitionEnricher
	rankEnricher           RankEnricher
	wordsRank              RankTable
	withDefinitions        bool
	skipDefinitionPointers bool
	withOffset             bool
	withFrequency          bool
}

type GrouperOption func(*PhrasalVerbGrouper)

// WithWordsRank enables rank enrichment of new compound tokens.
func WithWordsRank(ranks RankTable) GrouperOption {
	return func(g *PhrasalVerbGrouper) {
		g.wordsRank = ranks
	}
}

func WithDefinitions(enabled bool) GrouperOption {
	return func(g *PhrasalVerbGrouper) {
		g.withDefinitions = enabled
	}
}

func WithSkipDefinitionPointers(skip bool) GrouperOption {
	return func(g *PhrasalVerbGrouper) {
		g.skipDefinitionPointers = skip
	}
}

func WithOffset(enabled bool) GrouperOption {
	return func(g *PhrasalVerbGrouper) {
		g.withOffset = enabled
	}
}

func WithFrequency(enabled bool) GrouperOption {
	return func(g *PhrasalVerbGrouper) {
		g.withFrequency = enabled
	}
}

func WithDefinitionEnricher(enricher DefinitionEnricher) GrouperOption {
	return func(g *PhrasalVerbGrouper) {
		g.definitionEnricher = enricher
	}
}

func WithRankEnricher(enricher RankEnricher) GrouperOption {
	return func(g *PhrasalVerbGrouper) {
		g.rankEnricher = enricher
	}
}

func NewPhrasalVerbGrouper(dictionary Dictionary, options ...GrouperOption) *PhrasalVerbGrouper {
	g := &PhrasalVerbGrouper{
		dictionary:             dictionary,
		withDefinitions:        true,
		skipDefinitionPointers: true,
		withOffset:             true,
		withFrequency:          true,
	}
	for _, option := range options {
		option(g)
	}
	if g.definitionEnricher == nil {
		g.definitionEnricher = NewDictionaryDefinitionEnricher(dictionary)
	}
	if g.rankEnricher == nil {
		g.rankEnricher = NewTableRankEnricher()
	}
	return g
}

// span is a confirmed candidate: the verb..trigger range to remove from the
// stream and the context-filtered constituent indices of the compound.
type span struct {
	verb    int
	trigger int
	members []int
}

// Group runs one grouping pass in three phases: a pure scan collecting
// candidate windows, one dictionary confirmation per surviving candidate in
// scan order, and a single left-to-right rewrite of the stream. The input
// stream is left untouched; either a fully rewritten stream is returned or
// an error and no stream at all.
func (g *PhrasalVerbGrouper) Group(tokenStream *TokenStream) (*TokenStream, error) {
	candidates := scan(tokenStream.Tokens)
	spans, err := g.confirm(tokenStream.Tokens, candidates)
	if err != nil {
		return nil, err
	}
	return g.rewrite(tokenStream.Tokens, spans)
}

// Process makes the grouper usable as a pipeline Stage.
func (g *PhrasalVerbGrouper) Process(tokenStream *TokenStream) (*TokenStream, error) {
	return g.Group(tokenStream)
}

// scan drives the matcher over the whole stream. Closed windows never
// overlap: every trigger resets the matcher, confirmed or not.
func scan(tokens []Token) []candidate {
	var candidates []candidate
	m := newMatcher()
	for i := range tokens {
		if c, closed := m.step(tokens, i); closed {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// confirm screens each candidate through the context filter and the
// dictionary, strictly in scan order, one lookup at a time. An absent
// definition just means the words are not an idiom here; a lookup error is
// fatal to the whole pass.
func (g *PhrasalVerbGrouper) confirm(tokens []Token, candidates []candidate) ([]span, error) {
	var spans []span
	for _, c := range candidates {
		members := filterByContext(tokens, c.members)
		if len(members) < 2 {
			continue
		}
		phrase := JoinField(pick(tokens, members), FieldLemma, " ")
		definitions, err := g.dictionary.Lookup(phrase, tokens[c.verb].POS)
		if err != nil {
			return nil, err
		}
		if len(definitions) == 0 {
			continue
		}
		spans = append(spans, span{verb: c.verb, trigger: c.trigger, members: members})
	}
	return spans, nil
}

// rewrite builds the output buffer once, copying tokens through untouched
// regions and emitting a compound token at each confirmed span. Span tokens
// that are not constituents are reinserted right after the compound, which
// moves the object of a separable phrasal verb behind it ("look it up"
// becomes "look up", "it").
func (g *PhrasalVerbGrouper) rewrite(tokens []Token, spans []span) (*TokenStream, error) {
	output := make([]Token, 0, len(tokens))
	occurrences := make(map[string][]int)
	next := 0
	for i := 0; i < len(tokens); {
		if next < len(spans) && spans[next].verb == i {
			s := spans[next]
			next++
			compound := g.buildCompound(tokens, s)
			enriched, err := g.enrich(compound)
			if err != nil {
				return nil, err
			}
			occurrences[compound.Lemma] = append(occurrences[compound.Lemma], len(output))
			output = append(output, enriched)
			output = append(output, leftovers(tokens, s)...)
			i = s.trigger + 1
			continue
		}
		output = append(output, tokens[i])
		i++
	}
	if g.withFrequency {
		stampFrequencies(output, occurrences)
	}
	return NewTokenStream(output), nil
}

func (g *PhrasalVerbGrouper) buildCompound(tokens []Token, s span) Token {
	members := pick(tokens, s.members)
	compound := Token{
		Value:     JoinField(members, FieldValue, " "),
		Normal:    JoinField(members, FieldNormal, " "),
		Lemma:     JoinField(members, FieldLemma, " "),
		POS:       tokens[s.verb].POS,
		ContextID: tokens[s.trigger].ContextID,
		Tokens:    members,
	}
	if g.withOffset {
		compound.StartOffset = members[0].StartOffset
		compound.EndOffset = members[len(members)-1].EndOffset
	}
	return compound
}

// enrich runs the definition and rank collaborators on a fresh compound
// token, definitions first. Rank enrichment only runs when a rank table was
// configured.
func (g *PhrasalVerbGrouper) enrich(compound Token) (Token, error) {
	tokens := []Token{compound}
	var err error
	if g.withDefinitions {
		tokens, err = g.definitionEnricher.AddDefinitions(tokens, g.skipDefinitionPointers)
		if err != nil {
			return Token{}, err
		}
	}
	if g.wordsRank != nil {
		tokens, err = g.rankEnricher.AddRank(tokens, g.wordsRank)
		if err != nil {
			return Token{}, err
		}
	}
	return tokens[0], nil
}

// filterByContext drops candidate members whose context differs from the
// verb's. Tokens from different syntactic units never merge.
func filterByContext(tokens []Token, members []int) []int {
	contextID := tokens[members[0]].ContextID
	r := make([]int, 0, len(members))
	for _, i := range members {
		if tokens[i].ContextID == contextID {
			r = append(r, i)
		}
	}
	return r
}

// leftovers returns the span's tokens that did not become constituents, in
// their original relative order.
func leftovers(tokens []Token, s span) []Token {
	member := make(map[int]struct{}, len(s.members))
	for _, i := range s.members {
		member[i] = struct{}{}
	}
	var r []Token
	for i := s.verb; i <= s.trigger; i++ {
		if _, ok := member[i]; !ok {
			r = append(r, tokens[i])
		}
	}
	return r
}

func pick(tokens []Token, indices []int) []Token {
	r := make([]Token, len(indices))
	for i, idx := range indices {
		r[i] = tokens[idx]
	}
	return r
}
