package vectorizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tok, err := NewTokenizer(DefaultStopwords(), DefaultTokenCacheSize)
	if err != nil {
		t.Fatalf("NewTokenizer failed: %v", err)
	}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "case folding",
			text: "Yoga FITNESS Morning",
			want: []string{"yoga", "fitness", "morning"},
		},
		{
			name: "punctuation splits tokens",
			text: "chess-club, weekly meetup!",
			want: []string{"chess", "club", "weekly", "meetup"},
		},
		{
			name: "stopwords removed",
			text: "a class in the morning",
			want: []string{"class", "morning"},
		},
		{
			name: "single characters dropped",
			text: "x y pilates",
			want: []string{"pilates"},
		},
		{
			name: "duplicates retained",
			text: "yoga yoga class",
			want: []string{"yoga", "yoga", "class"},
		},
		{
			name: "digits kept",
			text: "gym 24 hours",
			want: []string{"gym", "24", "hours"},
		},
		{
			name: "only stopwords",
			text: "the and of",
			want: []string{},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeUnicodeFolding(t *testing.T) {
	tok, err := NewTokenizer(DefaultStopwords(), DefaultTokenCacheSize)
	if err != nil {
		t.Fatalf("NewTokenizer failed: %v", err)
	}

	got := tok.Tokenize("Café MÜNCHEN")
	want := []string{"café", "münchen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeMemo(t *testing.T) {
	tok, err := NewTokenizer(DefaultStopwords(), 8)
	if err != nil {
		t.Fatalf("NewTokenizer failed: %v", err)
	}

	first := tok.Tokenize("yoga morning class")
	second := tok.Tokenize("yoga morning class")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Memoized tokenization differs: %v vs %v", first, second)
	}
}

func TestTokenizeCustomStopwords(t *testing.T) {
	tok, err := NewTokenizer(StopwordSet([]string{"Yoga"}), DefaultTokenCacheSize)
	if err != nil {
		t.Fatalf("NewTokenizer failed: %v", err)
	}

	got := tok.Tokenize("the yoga class")
	want := []string{"the", "class"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
