package pinecone

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"immi-assistant-be/pkg/vectorstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))

		var req queryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 3, req.TopK)
		assert.True(t, req.IncludeMetadata)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"matches": []map[string]interface{}{
				{
					"id":    "chunk-1",
					"score": 0.91,
					"metadata": map[string]interface{}{
						"text":   "F-1 is a student visa.",
						"source": "visa-handbook.pdf",
					},
				},
				{
					"id":       "chunk-2",
					"score":    0.74,
					"metadata": map[string]interface{}{},
				},
			},
		})
	}))
	defer srv.Close()

	store := NewStore(Config{Host: srv.URL, APIKey: "test-key"})
	matches, err := store.Query(context.Background(), []float64{0.1, 0.2}, 3)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "chunk-1", matches[0].ID)
	assert.Equal(t, 0.91, matches[0].Score)
	assert.Equal(t, "F-1 is a student visa.", matches[0].Text())
	// Missing text metadata falls back to empty string.
	assert.Equal(t, "", matches[1].Text())
}

func TestStoreQueryUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid api key"}`))
	}))
	defer srv.Close()

	store := NewStore(Config{Host: srv.URL, APIKey: "bad-key"})
	_, err := store.Query(context.Background(), []float64{0.1}, 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestStoreUpsert(t *testing.T) {
	var received upsertRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vectors/upsert", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"upsertedCount": 1}`))
	}))
	defer srv.Close()

	store := NewStore(Config{Host: srv.URL, APIKey: "test-key"})
	err := store.Upsert(context.Background(), []vectorstore.Vector{
		{
			ID:     "chunk-1",
			Values: []float64{0.5, 0.6},
			Metadata: map[string]interface{}{
				"text": "passage",
			},
		},
	})

	require.NoError(t, err)
	require.Len(t, received.Vectors, 1)
	assert.Equal(t, "chunk-1", received.Vectors[0].ID)
}
