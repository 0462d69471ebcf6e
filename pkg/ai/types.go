// ABOUTME: Core AI SDK types: Message, Content, Usage, Model, StopReason, StreamOptions
// ABOUTME: Shared across all providers; wire-format agnostic

package ai

// Role represents a message role in the conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// StopReason indicates why the model stopped generating.
type StopReason string

const (
	StopEndTurn   StopReason = "end_turn"
	StopMaxTokens StopReason = "max_tokens"
	StopStop      StopReason = "stop"
)

// ContentType identifies the kind of content block.
type ContentType string

const (
	ContentText     ContentType = "text"
	ContentThinking ContentType = "thinking"
)

// Content represents a content block within a message.
type Content struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	Thinking string      `json:"thinking,omitempty"`
}

// Message represents a conversation message.
type Message struct {
	Role    Role      `json:"role"`
	Content []Content `json:"content"`
}

// NewTextMessage creates a message with a single text content block.
func NewTextMessage(role Role, text string) Message {
	return Message{
		Role:    role,
		Content: []Content{{Type: ContentText, Text: text}},
	}
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Api identifies an API provider.
type Api string

const (
	ApiOpenAI Api = "openai"
	ApiGoogle Api = "google"
)

// Model defines a model's metadata.
type Model struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Api             Api               `json:"api"`
	MaxTokens       int               `json:"max_tokens"`
	MaxOutputTokens int               `json:"max_output_tokens"`
	BaseURL         string            `json:"base_url,omitempty"`
	CustomHeaders   map[string]string `json:"custom_headers,omitempty"`
}

// Context holds the messages for an LLM call.
type Context struct {
	System   string    `json:"system,omitempty"`
	Messages []Message `json:"messages"`
}

// StreamOptions configures a generation call.
// Temperature is always sent: 0 means greedy decoding, not "provider default".
type StreamOptions struct {
	MaxTokens     int      `json:"max_tokens,omitempty"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"top_p,omitempty"`
	StopSequences []string `json:"stop_sequences,omitempty"`
}

// AssistantMessage is the final result of a streaming response.
type AssistantMessage struct {
	Content    []Content  `json:"content"`
	StopReason StopReason `json:"stop_reason"`
	Usage      Usage      `json:"usage"`
	Model      string     `json:"model"`
}

// Text concatenates all text blocks of the message.
func (m *AssistantMessage) Text() string {
	if m == nil {
		return ""
	}
	var out string
	for _, c := range m.Content {
		if c.Type == ContentText {
			out += c.Text
		}
	}
	return out
}
