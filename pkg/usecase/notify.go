package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-dev/herald/pkg/domain/interfaces"
	"github.com/herald-dev/herald/pkg/domain/model"
	"github.com/herald-dev/herald/pkg/utils/mdformat"
)

type notifyUseCase struct {
	notifier interfaces.Notifier
	content  string
}

// NewNotify creates a new instance of NotifyUseCase. content is an
// optional plain-text line delivered beside the embed.
func NewNotify(notifier interfaces.Notifier, content string) interfaces.NotifyUseCase {
	return &notifyUseCase{
		notifier: notifier,
		content:  content,
	}
}

// Announce formats the release into an embed payload and delivers it.
// A delivery failure does not undo the release; the error is still
// returned so the run is reported as failed.
func (uc *notifyUseCase) Announce(ctx context.Context, rec *model.ReleaseRecord) error {
	payload := &model.NotificationPayload{
		Title:       mdformat.FormatTitle(rec.Name),
		URL:         rec.URL,
		Description: mdformat.FormatDescription(rec.Body),
		Content:     uc.content,
	}

	if err := uc.notifier.Send(ctx, payload); err != nil {
		return goerr.Wrap(err, "failed to deliver release notification",
			goerr.V("title", payload.Title), goerr.V("url", payload.URL))
	}

	ctxlog.From(ctx).Info("Release notification delivered",
		"title", payload.Title,
		"description_length", len(payload.Description),
	)

	return nil
}
