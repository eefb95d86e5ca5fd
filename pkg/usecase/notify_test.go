package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/herald-dev/herald/pkg/domain/model"
	"github.com/herald-dev/herald/pkg/usecase"
)

// MockNotifier captures sent payloads
type MockNotifier struct {
	sendFunc func(ctx context.Context, payload *model.NotificationPayload) error
	sent     []*model.NotificationPayload
}

func (m *MockNotifier) Send(ctx context.Context, payload *model.NotificationPayload) error {
	m.sent = append(m.sent, payload)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, payload)
	}
	return nil
}

func TestNotifyUseCase_Announce(t *testing.T) {
	ctx := context.Background()

	t.Run("Formats body and title before delivery", func(t *testing.T) {
		notifier := &MockNotifier{}
		uc := usecase.NewNotify(notifier, "A new release is out!")

		rec := &model.ReleaseRecord{
			Version: "1.2.3",
			Name:    "v1.2.3",
			Body:    "Fixed in https://github.com/o/r/pull/42\n\n\n\nThanks @alice",
			URL:     "https://github.com/o/r/releases/tag/1.2.3",
		}

		gt.NoError(t, uc.Announce(ctx, rec))
		gt.Number(t, len(notifier.sent)).Equal(1)

		payload := notifier.sent[0]
		gt.Value(t, payload.Title).Equal("v1.2.3")
		gt.Value(t, payload.URL).Equal("https://github.com/o/r/releases/tag/1.2.3")
		gt.Value(t, payload.Content).Equal("A new release is out!")
		gt.String(t, payload.Description).Contains("[PR #42](https://github.com/o/r/pull/42)")
		gt.String(t, payload.Description).Contains("[@alice](https://github.com/alice)")
		gt.Value(t, strings.Contains(payload.Description, "\n\n\n")).Equal(false)
	})

	t.Run("Oversized body is capped before delivery", func(t *testing.T) {
		notifier := &MockNotifier{}
		uc := usecase.NewNotify(notifier, "")

		rec := &model.ReleaseRecord{
			Name: "v9.0.0",
			Body: strings.Repeat("y", 5000),
		}

		gt.NoError(t, uc.Announce(ctx, rec))
		gt.Number(t, len([]rune(notifier.sent[0].Description))).Equal(4096)
	})

	t.Run("Delivery failure is surfaced", func(t *testing.T) {
		notifier := &MockNotifier{
			sendFunc: func(ctx context.Context, payload *model.NotificationPayload) error {
				return errors.New("400 Bad Request")
			},
		}
		uc := usecase.NewNotify(notifier, "")

		err := uc.Announce(ctx, &model.ReleaseRecord{Name: "v1.0.0", Body: "body"})
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("failed to deliver release notification")
	})
}
