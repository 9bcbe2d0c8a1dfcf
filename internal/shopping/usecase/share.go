package usecase

import (
	"context"

	"sehrimilan/internal/model"
	"sehrimilan/internal/shopping"
)

// Share renders the current list as a WhatsApp message.
func (uc *implUseCase) Share(ctx context.Context, sc model.Scope) (shopping.ShareOutput, error) {
	out, err := uc.Get(ctx, sc, shopping.GetInput{Cached: true})
	if err != nil {
		return shopping.ShareOutput{}, err
	}

	text := shopping.ShareText(out.Entries, sc.Name())
	return shopping.ShareOutput{Text: text, URL: shopping.ShareURL(text)}, nil
}
