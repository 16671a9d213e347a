package vectorizer

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func newFitted(t *testing.T, docs []string) *TFIDF {
	t.Helper()
	v, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	return v
}

func TestFit(t *testing.T) {
	t.Run("VocabularyFromCorpus", func(t *testing.T) {
		v := newFitted(t, []string{"apple banana", "apple cherry"})
		if v.VocabularySize() != 3 {
			t.Errorf("Expected vocabulary of 3, got %d", v.VocabularySize())
		}
	})

	t.Run("StopwordsExcluded", func(t *testing.T) {
		v := newFitted(t, []string{"the apple and the banana"})
		if v.VocabularySize() != 2 {
			t.Errorf("Expected vocabulary of 2, got %d", v.VocabularySize())
		}
	})

	t.Run("EmptyCorpus", func(t *testing.T) {
		v, err := New(Config{})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := v.Fit(nil); !errors.Is(err, ErrEmptyCorpus) {
			t.Errorf("Expected ErrEmptyCorpus, got %v", err)
		}
	})

	t.Run("StopwordOnlyCorpus", func(t *testing.T) {
		v := newFitted(t, []string{"the and", "of or"})
		if v.VocabularySize() != 0 {
			t.Errorf("Expected empty vocabulary, got %d", v.VocabularySize())
		}
		vec, err := v.Transform("the and")
		if err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		if len(vec) != 0 {
			t.Errorf("Expected zero-dimensional vector, got %v", vec)
		}
	})

	t.Run("RefitReplacesState", func(t *testing.T) {
		v := newFitted(t, []string{"apple banana cherry"})
		if err := v.Fit([]string{"date"}); err != nil {
			t.Fatalf("Refit failed: %v", err)
		}
		if v.VocabularySize() != 1 {
			t.Errorf("Expected vocabulary of 1 after refit, got %d", v.VocabularySize())
		}
		vec, err := v.Transform("apple banana")
		if err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		for _, w := range vec {
			if w != 0 {
				t.Errorf("Old vocabulary leaked into refitted space: %v", vec)
			}
		}
	})
}

func TestTransform(t *testing.T) {
	t.Run("BeforeFit", func(t *testing.T) {
		v, err := New(Config{})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if _, err := v.Transform("apple"); !errors.Is(err, ErrNotFitted) {
			t.Errorf("Expected ErrNotFitted, got %v", err)
		}
	})

	t.Run("VectorsAreL2Normalized", func(t *testing.T) {
		v := newFitted(t, []string{"apple banana", "apple cherry", "banana date"})
		vec, err := v.Transform("apple banana")
		if err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
			t.Errorf("Expected unit norm, got %f", math.Sqrt(norm))
		}
	})

	t.Run("RarerTermsWeighMore", func(t *testing.T) {
		// "apple" appears in both documents, "banana" in one; idf must
		// weight banana higher in a mixed document.
		v := newFitted(t, []string{"apple banana", "apple"})
		vec, err := v.Transform("apple banana")
		if err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		// Vocabulary is sorted: apple=0, banana=1.
		if len(vec) != 2 {
			t.Fatalf("Expected 2 dimensions, got %d", len(vec))
		}
		if vec[1] <= vec[0] {
			t.Errorf("Expected banana (%f) to outweigh apple (%f)", vec[1], vec[0])
		}
	})

	t.Run("OutOfVocabularyIgnored", func(t *testing.T) {
		v := newFitted(t, []string{"apple banana"})
		vec, err := v.Transform("elderberry fig")
		if err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		for _, w := range vec {
			if w != 0 {
				t.Errorf("Expected zero vector for out-of-vocabulary text, got %v", vec)
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		v := newFitted(t, []string{"apple banana", "cherry date"})
		first, err := v.Transform("apple cherry")
		if err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		second, err := v.Transform("apple cherry")
		if err != nil {
			t.Fatalf("Transform failed: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Repeated transforms differ: %v vs %v", first, second)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	if _, err := New(Config{TokenCacheSize: -1}); !errors.Is(err, ErrInvalidCacheSize) {
		t.Errorf("Expected ErrInvalidCacheSize, got %v", err)
	}
}
