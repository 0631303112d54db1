package messaging

import (
	"carelink-agent/internal/app/models"
	"sync"
)

// messageCache holds the view-scoped, append-only message sequences.
// Order is whatever the server handed out; corrections apply by id and
// never reorder.
type messageCache struct {
	mu             sync.Mutex
	byConversation map[int][]models.Message
}

func newMessageCache() *messageCache {
	return &messageCache{
		byConversation: make(map[int][]models.Message),
	}
}

func (c *messageCache) Replace(conversationID int, messages []models.Message) {
	c.mu.Lock()
	c.byConversation[conversationID] = append([]models.Message(nil), messages...)
	c.mu.Unlock()
}

func (c *messageCache) Append(message models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sequence := c.byConversation[message.ConversationID]
	for i := range sequence {
		if sequence[i].ID == message.ID {
			sequence[i] = message
			return
		}
	}
	c.byConversation[message.ConversationID] = append(sequence, message)
}

func (c *messageCache) ApplyCorrection(message models.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sequence := c.byConversation[message.ConversationID]
	for i := range sequence {
		if sequence[i].ID == message.ID {
			sequence[i] = message
			return
		}
	}
}

func (c *messageCache) Remove(conversationID, messageID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sequence := c.byConversation[conversationID]
	for i := range sequence {
		if sequence[i].ID == messageID {
			c.byConversation[conversationID] = append(sequence[:i], sequence[i+1:]...)
			return
		}
	}
}

func (c *messageCache) Messages(conversationID int) []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Message(nil), c.byConversation[conversationID]...)
}

func (c *messageCache) IsRead(conversationID, messageID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, message := range c.byConversation[conversationID] {
		if message.ID == messageID {
			return message.IsRead
		}
	}
	return false
}

// UnreadForeign lists ids of cached unread messages not authored by the
// given user, in sequence order.
func (c *messageCache) UnreadForeign(conversationID, localUserID int) []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var ids []int
	for _, message := range c.byConversation[conversationID] {
		if !message.IsRead && message.UserID != localUserID {
			ids = append(ids, message.ID)
		}
	}
	return ids
}

func (c *messageCache) Drop(conversationID int) {
	c.mu.Lock()
	delete(c.byConversation, conversationID)
	c.mu.Unlock()
}
