package llm

// GenerateOptions holds the sampling parameters sent with every generation
// request. Values other than temperature are fixed; see DefaultOptions.
type GenerateOptions struct {
	Temperature   float64 `json:"temperature"`
	TopP          float64 `json:"top_p"`
	TopK          int     `json:"top_k"`
	RepeatPenalty float64 `json:"repeat_penalty"`
	NumPredict    int     `json:"num_predict"`
}

// DefaultOptions returns the sampling parameters used for summarization,
// with the given temperature.
func DefaultOptions(temperature float64) GenerateOptions {
	return GenerateOptions{
		Temperature:   temperature,
		TopP:          0.9,
		TopK:          40,
		RepeatPenalty: 1.1,
		NumPredict:    512,
	}
}

// GenerateRequest represents the request payload for the Ollama generate API.
// Streaming is always disabled: the client waits for one complete response.
type GenerateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options GenerateOptions `json:"options"`
	System  string          `json:"system,omitempty"`
}

// GenerateResponse represents the response from the Ollama generate API.
type GenerateResponse struct {
	Response string `json:"response"`
}

// ModelInfo describes one installed model as reported by the tags API.
type ModelInfo struct {
	Name string `json:"name"`
}

// TagsResponse represents the response from the Ollama tags API.
type TagsResponse struct {
	Models []ModelInfo `json:"models"`
}

// EmbedRequest represents the request payload for the Ollama embed API.
type EmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// EmbedResponse represents the response from the Ollama embed API.
type EmbedResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}
