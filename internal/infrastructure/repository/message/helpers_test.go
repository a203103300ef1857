package message_test

import "github.com/janhq/agent-memory-store/internal/domain/conversation"

func conversationParams(id, userID string) conversation.CreateParams {
	return conversation.CreateParams{ID: id, UserID: userID, Title: id}
}
