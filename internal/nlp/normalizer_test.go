package nlp

import (
	"reflect"
	"testing"

	"github.com/normanking/signavatar/internal/signs"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(signs.NewRepository(), DefaultConfig())
}

func TestNormalizer_Preprocess(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"strips punctuation", "hello, world!", "hello world"},
		{"collapses whitespace", "  hello   world  ", "hello world"},
		{"keeps digits", "room 42", "room 42"},
		{"empty", "", ""},
		{"punctuation only", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Preprocess(tt.input); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizer_DetectPhrases(t *testing.T) {
	n := newTestNormalizer()

	phrases, remaining := n.DetectPhrases("how are you today")
	if !reflect.DeepEqual(phrases, []string{"How are you"}) {
		t.Errorf("phrases = %v, want [How are you]", phrases)
	}
	if remaining != "today" {
		t.Errorf("remaining = %q, want %q", remaining, "today")
	}

	phrases, remaining = n.DetectPhrases("thank you good morning")
	if len(phrases) != 2 {
		t.Fatalf("phrases = %v, want two matches", phrases)
	}
	if remaining != "" {
		t.Errorf("remaining = %q, want empty", remaining)
	}
}

func TestNormalizer_RemoveStopWords(t *testing.T) {
	n := newTestNormalizer()

	// "the" is a plain stopword; "a" is a stopword with a sign
	// mapping (letter A) and must survive; "you" is on the keep list.
	got := n.RemoveStopWords([]string{"the", "a", "you", "dog"})
	want := []string{"a", "you", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveStopWords = %v, want %v", got, want)
	}
}

func TestNormalizer_MapToSigns(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"direct mapping", []string{"dog"}, []string{"Dog"}},
		{"synonym mapping", []string{"puppy"}, []string{"Dog"}},
		{"fingerspell unknown", []string{"xyz"}, []string{"X", "Y", "Z"}},
		{"short unknown dropped", []string{"qq"}, nil},
		{"repeated tokens kept", []string{"dog", "dog"}, []string{"Dog", "Dog"}},
		{"pronoun repetition", []string{"i", "i"}, []string{"I", "I"}},
		{"number word", []string{"seven"}, []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.MapToSigns(tt.tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MapToSigns(%v) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestNormalizer_Reorder_TimeFirst(t *testing.T) {
	n := newTestNormalizer()

	got := n.Reorder([]string{"Hello", "Today", "Dog", "Monday"})
	want := []string{"Today", "Monday", "Hello", "Dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reorder = %v, want %v", got, want)
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "phrase with time reorder",
			input: "how are you today",
			want:  []string{"Today", "How are you"},
		},
		{
			name:  "greeting and fingerspelling",
			input: "hello world",
			want:  []string{"Hello", "W", "O", "R", "L", "D"},
		},
		{
			name:  "synonyms collapse to one sign",
			input: "my mom",
			want:  []string{"I", "Mother"},
		},
		{
			name:  "day reordered before subject",
			input: "happy monday",
			want:  []string{"Monday", "Happy"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := n.Normalize(tt.input)
			if !reflect.DeepEqual(res.Signs, tt.want) {
				t.Errorf("Normalize(%q).Signs = %v, want %v", tt.input, res.Signs, tt.want)
			}
		})
	}
}

func TestNormalizer_ResultIntermediates(t *testing.T) {
	n := newTestNormalizer()

	res := n.Normalize("Good morning, dogs!")
	if res.Preprocessed != "good morning dogs" {
		t.Errorf("Preprocessed = %q", res.Preprocessed)
	}
	if !reflect.DeepEqual(res.Phrases, []string{"Good Morning"}) {
		t.Errorf("Phrases = %v, want [Good Morning]", res.Phrases)
	}
	if len(res.Signs) == 0 || res.Signs[0] != "Good Morning" {
		t.Errorf("Signs = %v, want Good Morning first", res.Signs)
	}
	// "dogs" maps to Dog either directly or after lemmatization.
	if res.Signs[len(res.Signs)-1] != "Dog" {
		t.Errorf("Signs = %v, want Dog last", res.Signs)
	}
}

func TestLemmatizer_PassThrough(t *testing.T) {
	l := NewLemmatizer()

	// Out-of-dictionary tokens are returned unchanged.
	if got := l.Lemma("zzxqv"); got != "zzxqv" {
		t.Errorf("Lemma(zzxqv) = %q, want pass-through", got)
	}
	if got := l.Lemma(""); got != "" {
		t.Errorf("Lemma(\"\") = %q, want empty", got)
	}
}

func TestNormalizer_LemmatizerDisabled(t *testing.T) {
	n := NewNormalizer(signs.NewRepository(), Config{Lemmatize: false})

	// "mothers" has no direct sign mapping; without lemmatization it
	// stays in surface form and falls through to fingerspelling.
	res := n.Normalize("mothers")
	if !reflect.DeepEqual(res.Lemmatized, []string{"mothers"}) {
		t.Errorf("Lemmatized = %v, want surface form", res.Lemmatized)
	}
	want := []string{"M", "O", "T", "H", "E", "R", "S"}
	if !reflect.DeepEqual(res.Signs, want) {
		t.Errorf("Signs = %v, want %v", res.Signs, want)
	}
}

func TestVocabulary_AllSignsExist(t *testing.T) {
	repo := signs.NewRepository()

	for word, sign := range WordSigns {
		if !repo.Contains(sign) {
			t.Errorf("word %q maps to %q, not in the repository", word, sign)
		}
	}
	for surface, sign := range Phrases {
		if !repo.Contains(sign) {
			t.Errorf("phrase %q maps to %q, not in the repository", surface, sign)
		}
	}
}
