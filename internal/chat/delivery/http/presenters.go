package http

import (
	"strings"

	"sehrimilan/internal/chat"
)

const (
	eventFragment = "fragment"
	eventDone     = "done"
	eventError    = "error"
)

type messageReq struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type replyReq struct {
	Message string       `json:"message" binding:"required,max=2000"`
	History []messageReq `json:"history" binding:"dive"`
}

func (r replyReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r replyReq) toInput() chat.ReplyInput {
	history := make([]chat.Message, len(r.History))
	for i, m := range r.History {
		history[i] = chat.Message{Role: chat.Role(m.Role), Content: m.Content}
	}
	return chat.ReplyInput{Message: r.Message, History: history}
}

type fragmentResp struct {
	Text string `json:"text"`
}

type doneResp struct {
	Text string `json:"text"`
}

type errorResp struct {
	Message string `json:"message"`
}
