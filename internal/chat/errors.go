package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("chat: message is empty")
	ErrReplyFailed  = errors.New("chat: reply stream failed")
)
