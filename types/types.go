package types

// Program represents one catalog entry. All fields are optional in the
// input files; absent fields decode to empty strings.
type Program struct {
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Venue    string `json:"venue,omitempty"`
}

// Document synthesizes the text used for feature construction:
// name, category, and notes joined with single spaces.
func (p Program) Document() string {
	return p.Name + " " + p.Category + " " + p.Notes
}

// Result holds the outcome of one ranking run. An empty Programs slice is
// a normal outcome, not an error; Note explains why it is empty.
type Result struct {
	Programs []Program `json:"programs"`
	Note     string    `json:"note,omitempty"`
}

// VectorProvider defines the interface all vectorization backends must satisfy.
type VectorProvider interface {
	// Fit learns the feature space from the full document corpus.
	// Calling Fit again fully replaces any previously learned state.
	Fit(docs []string) error
	// Transform projects a document into the fitted feature space.
	Transform(doc string) ([]float64, error)
	// Close frees any resources held by the provider.
	Close()
}

// ProviderType represents the type of vector provider.
type ProviderType string

const (
	ProviderTFIDF  ProviderType = "tfidf"
	ProviderOpenAI ProviderType = "openai"
)
