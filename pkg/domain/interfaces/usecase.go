package interfaces

import (
	"context"

	"github.com/herald-dev/herald/pkg/domain/model"
)

// ReleaseUseCase defines operations for publishing a changelog entry
type ReleaseUseCase interface {
	// Published reports whether the version has already been tagged
	Published(ctx context.Context, version string) (bool, error)

	// Publish creates a release for the entry and returns its record
	Publish(ctx context.Context, entry *model.ChangelogEntry) (*model.ReleaseRecord, error)
}

// NotifyUseCase defines operations for announcing a published release
type NotifyUseCase interface {
	// Announce formats the release into an embed and delivers it
	Announce(ctx context.Context, rec *model.ReleaseRecord) error
}

// Notifier delivers a formatted notification payload to a chat endpoint
type Notifier interface {
	Send(ctx context.Context, payload *model.NotificationPayload) error
}
