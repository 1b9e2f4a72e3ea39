package nlp

import "strings"

// stopWordList holds common English function words dropped during
// normalization. A token on this list still survives when it has a
// sign mapping (the allow-list override in RemoveStopWords).
var stopWordList = []string{
	"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "shall", "can", "need", "dare",
	"ought", "used", "to", "of", "in", "for", "on", "with", "at", "by",
	"from", "as", "into", "through", "during", "before", "after",
	"above", "below", "between", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "what", "which",
	"who", "whom", "this", "that", "these", "those", "am", "and", "but",
	"if", "or", "because", "until", "while", "very", "just", "only",
	"own", "same", "so", "than", "too", "also", "such", "no", "not",
	"both", "each", "few", "more", "most", "other", "some", "any", "all",
}

// keepWords are never treated as stopwords even without a mapping;
// they carry meaning in signed sentences.
var keepWords = []string{
	"i", "you", "he", "she", "it", "how", "are",
	"good", "morning", "night", "today",
}

func buildStopWords() map[string]struct{} {
	stop := make(map[string]struct{}, len(stopWordList))
	for _, w := range stopWordList {
		stop[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range keepWords {
		delete(stop, strings.ToLower(w))
	}
	return stop
}
