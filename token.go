package phrasal

import "strings"

// Penn Treebank tags the matcher reacts to.
const (
	verbTagPrefix  = "VB"
	particleTag    = "RP"
	prepositionTag = "IN"
)

// Token is the unit of the annotated stream: a word, punctuation mark, or a
// compound built from several originals.
type Token struct {
	Value       string
	Normal      string
	Lemma       string
	POS         string
	ContextID   int
	StartOffset *int
	EndOffset   *int
	Tokens      []Token // constituents, set only on a compound token
	Frequency   int     // occurrences of the same compound lemma, set only when >= 2
	Definitions []Definition
	Rank        int
}

type TokenOption func(*Token)

func NewToken(value string, options ...TokenOption) Token {
	token := Token{Value: value}
	for _, option := range options {
		option(&token)
	}
	return token
}

func setNormal(normal string) TokenOption {
	return func(t *Token) {
		t.Normal = normal
	}
}

func setLemma(lemma string) TokenOption {
	return func(t *Token) {
		t.Lemma = lemma
	}
}

func setPOS(pos string) TokenOption {
	return func(t *Token) {
		t.POS = pos
	}
}

func setContextID(id int) TokenOption {
	return func(t *Token) {
		t.ContextID = id
	}
}

func (t Token) isVerb() bool {
	return strings.HasPrefix(t.POS, verbTagPrefix)
}

func (t Token) isParticle() bool {
	return t.POS == particleTag
}

func (t Token) isPreposition() bool {
	return t.POS == prepositionTag
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{
		Tokens: tokens,
	}
}

func (ts *TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts *TokenStream) Values() []string {
	values := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		values[i] = t.Value
	}
	return values
}

type TokenField int

const (
	FieldValue TokenField = iota
	FieldNormal
	FieldLemma
)

// JoinField concatenates one field of each token with the separator.
func JoinField(tokens []Token, field TokenField, sep string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		switch field {
		case FieldNormal:
			parts[i] = t.Normal
		case FieldLemma:
			parts[i] = t.Lemma
		default:
			parts[i] = t.Value
		}
	}
	return strings.Join(parts, sep)
}
