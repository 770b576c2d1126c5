package prompt

import (
	"testing"

	"immi-assistant-be/internal/constant"
	"immi-assistant-be/pkg/rag/retriever"

	"github.com/stretchr/testify/assert"
)

func TestContextJoinsPassagesInOrder(t *testing.T) {
	passages := []retriever.Passage{
		{Text: "first passage", Score: 0.9},
		{Text: "second passage", Score: 0.8},
		{Text: "third passage", Score: 0.7},
	}

	b := NewBuilder(passages, "question")
	assert.Equal(t, "first passage\nsecond passage\nthird passage", b.Context())
}

func TestContextKeepsEmptyPassages(t *testing.T) {
	passages := []retriever.Passage{
		{Text: "has text", Score: 0.9},
		{Text: "", Score: 0.5},
	}

	b := NewBuilder(passages, "question")
	assert.Equal(t, "has text\n", b.Context())
}

func TestBuildMessages(t *testing.T) {
	passages := []retriever.Passage{
		{Text: "F-1 is a student visa.", Score: 0.92},
	}

	messages := NewBuilder(passages, "What is an F-1 visa?").Build()

	assert.Len(t, messages, 2)
	assert.Equal(t, constant.ChatMessageRoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "expert immigration assistant")
	assert.Contains(t, messages[0].Content, "F-1 is a student visa.")
	assert.Equal(t, constant.ChatMessageRoleUser, messages[1].Role)
	assert.Equal(t, "What is an F-1 visa?", messages[1].Content)
}
