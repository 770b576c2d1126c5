package vectorstore

import "context"

// Match is a single nearest-neighbor result returned by the index.
type Match struct {
	ID       string
	Score    float64
	Metadata map[string]interface{}
}

// Text returns the stored passage text, or "" when the metadata lacks one.
func (m Match) Text() string {
	if v, ok := m.Metadata["text"].(string); ok {
		return v
	}
	return ""
}

// Vector is an embedding paired with its identity and stored metadata.
type Vector struct {
	ID       string
	Values   []float64
	Metadata map[string]interface{}
}

// VectorStore is the contract against the hosted vector index.
type VectorStore interface {
	Query(ctx context.Context, vector []float64, topK int) ([]Match, error)
	Upsert(ctx context.Context, vectors []Vector) error
}
