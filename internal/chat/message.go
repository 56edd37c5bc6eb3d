// Package chat holds the conversation shown by the chat view and the engines
// that produce assistant replies.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a conversation.
type Message struct {
	ID      string
	Role    Role
	Content string
	Time    time.Time
}

// NewMessage stamps a message with a fresh ID and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:      uuid.New().String(),
		Role:    role,
		Content: content,
		Time:    time.Now(),
	}
}

// Conversation is the in-memory message list for the running shell. It is
// not persisted.
type Conversation struct {
	messages []Message
	pending  bool
}

// Messages returns the messages in order.
func (c *Conversation) Messages() []Message {
	return c.messages
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Pending reports whether a reply is outstanding.
func (c *Conversation) Pending() bool {
	return c.pending
}

// Ask appends a user message and marks a reply as outstanding. It returns
// false without changing anything when a reply is already pending or the
// content is empty.
func (c *Conversation) Ask(content string) (Message, bool) {
	if c.pending || content == "" {
		return Message{}, false
	}
	m := NewMessage(RoleUser, content)
	c.messages = append(c.messages, m)
	c.pending = true
	return m, true
}

// Answer appends the assistant reply and clears the pending flag.
func (c *Conversation) Answer(content string) Message {
	m := NewMessage(RoleAssistant, content)
	c.messages = append(c.messages, m)
	c.pending = false
	return m
}

// Abandon clears the pending flag after a failed reply.
func (c *Conversation) Abandon() {
	c.pending = false
}

// Clear drops every message.
func (c *Conversation) Clear() {
	c.messages = nil
	c.pending = false
}
