// Command loader populates the vector index from a directory of documents.
// It extracts text from PDF and plain-text files, chunks it, embeds each
// chunk and upserts the result into Pinecone. Run offline; the REST server
// never writes to the index.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"immi-assistant-be/internal/config"
	"immi-assistant-be/pkg/embedding"
	"immi-assistant-be/pkg/utils"
	"immi-assistant-be/pkg/vectorstore"
	"immi-assistant-be/pkg/vectorstore/pinecone"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

const upsertBatchSize = 50

func main() {
	docsDir := flag.String("dir", "data/documents", "directory with .pdf/.txt documents")
	chunkSize := flag.Int("chunk-size", 1000, "chunk size in characters")
	overlap := flag.Int("overlap", 200, "overlap between chunks in characters")
	flag.Parse()

	cfg := config.Load()
	if cfg.Keys.OpenAI == "" || cfg.Keys.Pinecone == "" {
		log.Fatal("OPENAI_API_KEY and PINECONE_API_KEY must be set")
	}

	embeddingProvider := embedding.NewOpenAIProvider(cfg.Keys.OpenAI, "", cfg.Ai.EmbeddingModel)
	store := pinecone.NewStore(pinecone.Config{
		Host:   cfg.Pinecone.IndexHost,
		APIKey: cfg.Keys.Pinecone,
	})

	ctx := context.Background()

	entries, err := os.ReadDir(*docsDir)
	if err != nil {
		log.Fatalf("Unable to read documents directory: %v", err)
	}

	var total int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(*docsDir, entry.Name())
		text, err := extractText(path)
		if err != nil {
			log.Printf("[WARN] Skipping %s: %v", entry.Name(), err)
			continue
		}

		chunks := utils.SplitText(text, *chunkSize, *overlap)
		log.Printf("[INFO] %s: %d chunks", entry.Name(), len(chunks))

		if err := indexChunks(ctx, embeddingProvider, store, entry.Name(), chunks); err != nil {
			log.Fatalf("Indexing %s failed: %v", entry.Name(), err)
		}
		total += len(chunks)
	}

	log.Printf("[INFO] Document loading and indexing complete (%d chunks)", total)
}

func extractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case ".pdf":
		return extractPDF(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	return b.String(), nil
}

func indexChunks(
	ctx context.Context,
	embeddingProvider embedding.EmbeddingProvider,
	store vectorstore.VectorStore,
	source string,
	chunks []string,
) error {
	batch := make([]vectorstore.Vector, 0, upsertBatchSize)

	for i, chunk := range chunks {
		values, err := embeddingProvider.Generate(ctx, chunk)
		if err != nil {
			return fmt.Errorf("embedding chunk %d: %w", i, err)
		}

		batch = append(batch, vectorstore.Vector{
			ID:     uuid.NewString(),
			Values: values,
			Metadata: map[string]interface{}{
				"text":   chunk,
				"source": source,
				"chunk":  i,
			},
		})

		if len(batch) == upsertBatchSize {
			if err := store.Upsert(ctx, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		return store.Upsert(ctx, batch)
	}
	return nil
}
