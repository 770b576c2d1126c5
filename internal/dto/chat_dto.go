package dto

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

// ChatResponse is the fixed envelope every successful answer is wrapped in.
// KeyPoints and FollowUp are reserved extension points and are always emitted
// as empty arrays.
type ChatResponse struct {
	Response ResponseBody `json:"response"`
	Metadata Metadata     `json:"metadata"`
}

type ResponseBody struct {
	Overview  string   `json:"overview"`
	KeyPoints []string `json:"key_points"`
	FollowUp  []string `json:"follow_up"`
}

type Metadata struct {
	Sources []Source `json:"sources"`
}

type Source struct {
	RelevanceScore float64 `json:"relevance_score"`
}

// NewChatResponse builds an envelope with the extension points initialized so
// they marshal as [] rather than null.
func NewChatResponse(overview string, sources []Source) *ChatResponse {
	if sources == nil {
		sources = []Source{}
	}
	return &ChatResponse{
		Response: ResponseBody{
			Overview:  overview,
			KeyPoints: []string{},
			FollowUp:  []string{},
		},
		Metadata: Metadata{
			Sources: sources,
		},
	}
}
