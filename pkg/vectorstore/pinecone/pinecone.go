// Package pinecone is a minimal REST client to the Pinecone data plane.
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"immi-assistant-be/pkg/vectorstore"
)

type Store struct {
	host   string
	apiKey string
	client *http.Client
}

type Config struct {
	// Host is the index endpoint, e.g. https://visaindex-xxxx.svc.us-east-1.pinecone.io
	Host   string
	APIKey string
}

func NewStore(cfg Config) *Store {
	host := strings.TrimSuffix(cfg.Host, "/")
	return &Store{
		host:   host,
		apiKey: cfg.APIKey,
		client: &http.Client{},
	}
}

type queryRequest struct {
	Vector          []float64 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []struct {
		ID       string                 `json:"id"`
		Score    float64                `json:"score"`
		Metadata map[string]interface{} `json:"metadata"`
	} `json:"matches"`
}

func (s *Store) Query(ctx context.Context, vector []float64, topK int) ([]vectorstore.Match, error) {
	if topK <= 0 {
		topK = 3
	}
	reqBody := queryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: true,
	}

	var res queryResponse
	if err := s.postJSON(ctx, s.host+"/query", reqBody, &res); err != nil {
		return nil, err
	}

	matches := make([]vectorstore.Match, 0, len(res.Matches))
	for _, m := range res.Matches {
		matches = append(matches, vectorstore.Match{
			ID:       m.ID,
			Score:    m.Score,
			Metadata: m.Metadata,
		})
	}
	return matches, nil
}

type upsertRequest struct {
	Vectors []upsertVector `json:"vectors"`
}

type upsertVector struct {
	ID       string                 `json:"id"`
	Values   []float64              `json:"values"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (s *Store) Upsert(ctx context.Context, vectors []vectorstore.Vector) error {
	payload := upsertRequest{
		Vectors: make([]upsertVector, 0, len(vectors)),
	}
	for _, v := range vectors {
		payload.Vectors = append(payload.Vectors, upsertVector{
			ID:       v.ID,
			Values:   v.Values,
			Metadata: v.Metadata,
		})
	}
	return s.postJSON(ctx, s.host+"/vectors/upsert", payload, nil)
}

func (s *Store) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	resBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pinecone error, code %d, body %s", resp.StatusCode, string(resBytes))
	}

	if out != nil {
		return json.Unmarshal(resBytes, out)
	}
	return nil
}
