package domain

type Conversation struct {
	ID          int64     `json:"id"`
	Participant *User     `json:"participant,omitempty"`
	LastMessage string    `json:"last_message,omitempty"`
	UpdatedAt   Timestamp `json:"updated_at,omitempty"`
}

type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	SenderID       int64     `json:"sender_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      Timestamp `json:"created_at,omitempty"`
}
