package prompt

import (
	"fmt"
	"strings"

	"immi-assistant-be/internal/constant"
	"immi-assistant-be/pkg/llm"
	"immi-assistant-be/pkg/rag/retriever"
)

// Builder assembles the completion messages from retrieved passages.
type Builder struct {
	passages []retriever.Passage
	question string
}

func NewBuilder(passages []retriever.Passage, question string) *Builder {
	return &Builder{
		passages: passages,
		question: question,
	}
}

// Context newline-joins the passage texts in the order the index returned
// them. Passages without stored text contribute an empty line.
func (b *Builder) Context() string {
	texts := make([]string, 0, len(b.passages))
	for _, p := range b.passages {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n")
}

// Build produces the system + user message pair for the completion call.
func (b *Builder) Build() []llm.Message {
	return []llm.Message{
		{
			Role:    constant.ChatMessageRoleSystem,
			Content: fmt.Sprintf(constant.SystemPromptTemplate, b.Context()),
		},
		{
			Role:    constant.ChatMessageRoleUser,
			Content: b.question,
		},
	}
}
