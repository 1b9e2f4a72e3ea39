package nlp

import (
	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/rs/zerolog/log"
)

// Lemmatizer reduces tokens to their dictionary base form. It wraps the
// golem English dictionary; tokens the dictionary does not know pass
// through unchanged.
type Lemmatizer struct {
	lem *golem.Lemmatizer
}

// NewLemmatizer loads the English lemma dictionary. On load failure the
// lemmatizer degrades to identity, which keeps the pipeline usable for
// vocabulary words that already carry their inflected variants.
func NewLemmatizer() *Lemmatizer {
	lem, err := golem.New(en.New())
	if err != nil {
		log.Warn().Err(err).Msg("lemma dictionary unavailable, tokens pass through")
		return &Lemmatizer{}
	}
	return &Lemmatizer{lem: lem}
}

// Lemma returns the base form of a single token.
func (l *Lemmatizer) Lemma(token string) string {
	if l.lem == nil || token == "" {
		return token
	}
	if !l.lem.InDict(token) {
		return token
	}
	return l.lem.Lemma(token)
}

// LemmaAll maps Lemma over a token slice, preserving order.
func (l *Lemmatizer) LemmaAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = l.Lemma(tok)
	}
	return out
}
