package chat

// Role names who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// --- UseCase Inputs ---

type ReplyInput struct {
	Message string
	// History is the prior conversation, oldest first. An empty history starts
	// from the assistant greeting.
	History []Message
}

// --- UseCase Outputs ---

type ReplyOutput struct {
	Text string
}
