package store

// Session records the last exchange for a conversation context. Entries are
// best-effort: losing one never changes the correctness of a reply.
type Session struct {
	ID        string `json:"id"` // context/conversation identifier
	LastUser  string `json:"last_user"`
	LastReply string `json:"last_reply"`
}
