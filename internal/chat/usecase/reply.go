package usecase

import (
	"context"
	"fmt"
	"strings"

	"sehrimilan/internal/chat"
	"sehrimilan/internal/model"
)

func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, input chat.ReplyInput, onFragment func(string) error) (chat.ReplyOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ReplyOutput{}, chat.ErrEmptyMessage
	}

	var b strings.Builder
	err := uc.transport.Stream(ctx, chat.BuildPrompt(message, input.History), func(fragment string) error {
		b.WriteString(fragment)
		if onFragment == nil {
			return nil
		}
		return onFragment(fragment)
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reply Call: user %s: %v", sc.UserID, err)
		return chat.ReplyOutput{Text: b.String()}, fmt.Errorf("%w: %w", chat.ErrReplyFailed, err)
	}

	return chat.ReplyOutput{Text: b.String()}, nil
}
