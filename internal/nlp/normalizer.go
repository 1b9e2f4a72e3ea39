// Package nlp normalizes free-form English text into ordered sign
// tokens: lowercasing, phrase detection, tokenization, lemmatization,
// stop-word filtering with a sign-aware allow-list, word-to-sign
// mapping with a fingerspelling fallback, and time-first reordering.
package nlp

import (
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Vocabulary reports whether a sign token exists in the repository.
// Fingerspelling consults it so unknown characters are skipped instead
// of producing unrenderable tokens.
type Vocabulary interface {
	Contains(token string) bool
}

// Result carries every intermediate stage of a normalization run so
// callers (and the API) can show how the output was derived.
type Result struct {
	Original     string   `json:"original_text"`
	Preprocessed string   `json:"preprocessed"`
	Phrases      []string `json:"phrases_detected"`
	Tokens       []string `json:"tokens"`
	Lemmatized   []string `json:"lemmatized"`
	Filtered     []string `json:"filtered"`
	Signs        []string `json:"signs"`
}

// Config controls the optional normalizer stages.
type Config struct {
	Lemmatize bool `mapstructure:"lemmatizer_enabled"`
}

// DefaultConfig enables lemmatization.
func DefaultConfig() Config {
	return Config{Lemmatize: true}
}

// Normalizer converts raw text into a sequence of sign tokens drawn
// from a closed vocabulary.
type Normalizer struct {
	vocab       Vocabulary
	lemmatizer  *Lemmatizer
	stopWords   map[string]struct{}
	phraseOrder []string
	nonWordRE   *regexp.Regexp
	logger      zerolog.Logger
}

// NewNormalizer builds a normalizer backed by the given sign
// vocabulary. With lemmatization disabled, tokens pass to the filtering
// stage in their surface form.
func NewNormalizer(vocab Vocabulary, cfg Config) *Normalizer {
	// Longest surface form first so "good morning" wins over any
	// shorter overlapping phrase.
	order := make([]string, 0, len(Phrases))
	for k := range Phrases {
		order = append(order, k)
	}
	sort.Slice(order, func(i, j int) bool {
		if len(order[i]) != len(order[j]) {
			return len(order[i]) > len(order[j])
		}
		return order[i] < order[j]
	})

	lemmatizer := &Lemmatizer{}
	if cfg.Lemmatize {
		lemmatizer = NewLemmatizer()
	}

	return &Normalizer{
		vocab:       vocab,
		lemmatizer:  lemmatizer,
		stopWords:   buildStopWords(),
		phraseOrder: order,
		nonWordRE:   regexp.MustCompile(`[^\w\s]`),
		logger:      log.With().Str("component", "nlp").Logger(),
	}
}

// Preprocess lowercases, strips punctuation to spaces and collapses
// whitespace.
func (n *Normalizer) Preprocess(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.Join(strings.Fields(text), " ")
	text = n.nonWordRE.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// DetectPhrases extracts multi-word phrases before tokenization and
// returns the phrase sign tokens plus the remaining text with the
// matched spans removed.
func (n *Normalizer) DetectPhrases(text string) (phrases []string, remaining string) {
	remaining = strings.ToLower(text)
	for _, surface := range n.phraseOrder {
		if strings.Contains(remaining, surface) {
			phrases = append(phrases, Phrases[surface])
			remaining = strings.ReplaceAll(remaining, surface, " ")
		}
	}
	return phrases, strings.Join(strings.Fields(remaining), " ")
}

// Tokenize splits preprocessed text on whitespace.
func (n *Normalizer) Tokenize(text string) []string {
	return strings.Fields(text)
}

// RemoveStopWords drops function words but keeps any token that has a
// sign mapping, stopword or not.
func (n *Normalizer) RemoveStopWords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := n.stopWords[tok]; !stop {
			filtered = append(filtered, tok)
			continue
		}
		if _, mapped := WordSigns[tok]; mapped {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}

// MapToSigns maps each token to its sign. Unknown tokens longer than
// two characters are fingerspelled letter by letter; shorter unknowns
// are dropped. Every occurrence is emitted.
func (n *Normalizer) MapToSigns(tokens []string) []string {
	var signs []string
	for _, tok := range tokens {
		if sign, ok := WordSigns[tok]; ok {
			signs = append(signs, sign)
			continue
		}
		if len(tok) <= 2 {
			n.logger.Debug().Str("token", tok).Msg("no mapping, token dropped")
			continue
		}
		for _, r := range strings.ToUpper(tok) {
			letter := string(r)
			if n.vocab != nil && n.vocab.Contains(letter) {
				signs = append(signs, letter)
			}
		}
	}
	return signs
}

// Reorder moves time-expression signs to the front, preserving the
// relative order within each group.
func (n *Normalizer) Reorder(signs []string) []string {
	timeFirst := make([]string, 0, len(signs))
	rest := make([]string, 0, len(signs))
	for _, s := range signs {
		if _, ok := TimeSigns[s]; ok {
			timeFirst = append(timeFirst, s)
		} else {
			rest = append(rest, s)
		}
	}
	return append(timeFirst, rest...)
}

// Normalize runs the full pipeline and returns all intermediates.
func (n *Normalizer) Normalize(text string) *Result {
	res := &Result{Original: text}

	res.Preprocessed = n.Preprocess(text)

	phrases, remaining := n.DetectPhrases(res.Preprocessed)
	res.Phrases = phrases

	res.Tokens = n.Tokenize(remaining)
	res.Lemmatized = n.lemmatizer.LemmaAll(res.Tokens)
	res.Filtered = n.RemoveStopWords(res.Lemmatized)

	wordSigns := n.MapToSigns(res.Filtered)
	res.Signs = n.Reorder(append(append([]string{}, phrases...), wordSigns...))

	n.logger.Debug().
		Str("text", text).
		Strs("signs", res.Signs).
		Msg("normalized")

	return res
}

// Signs is a convenience wrapper returning just the ordered tokens.
func (n *Normalizer) Signs(text string) []string {
	return n.Normalize(text).Signs
}
