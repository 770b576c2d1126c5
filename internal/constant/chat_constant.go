package constant

const (
	ChatMessageRoleSystem    = "system"
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// SystemPromptTemplate is the fixed instruction for the completion call.
// %s is replaced with the newline-joined retrieved context.
const SystemPromptTemplate = "You are an expert immigration assistant. Use this context to answer the question: %s"

// GreetingOverview is returned for pure greetings without touching any upstream.
const GreetingOverview = "Hi, I'm Immi! I'm here to help with your US immigration and visa questions. How can I assist you today?"

// OffTopicOverview redirects questions that are clearly not about immigration.
const OffTopicOverview = "While I'd love to chat about that, I'm actually your go-to expert for US immigration! How about we discuss your immigration journey instead?"

// GenericErrorMessage is the only error text surfaced to clients.
// Upstream failures (embedding, vector index, completion) are never distinguished.
const GenericErrorMessage = "internal server error"
