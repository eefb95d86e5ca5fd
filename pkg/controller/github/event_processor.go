package github

import (
	"context"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-dev/herald/pkg/domain/interfaces"
	"github.com/herald-dev/herald/pkg/domain/model"
)

// EventProcessor turns GitHub webhook events into release announcements
type EventProcessor struct {
	notifyUC interfaces.NotifyUseCase
}

// NewEventProcessor creates a new GitHub event processor
func NewEventProcessor(notifyUC interfaces.NotifyUseCase) *EventProcessor {
	return &EventProcessor{
		notifyUC: notifyUC,
	}
}

// ProcessEvent processes a GitHub webhook event
func (p *EventProcessor) ProcessEvent(ctx context.Context, eventType string, payload interface{}) error {
	switch eventType {
	case "release":
		return p.processReleaseEvent(ctx, payload)
	default:
		ctxlog.From(ctx).Info("Ignoring unsupported event type", "event_type", eventType)
		return nil
	}
}

// processReleaseEvent announces a release that went out
func (p *EventProcessor) processReleaseEvent(ctx context.Context, payload interface{}) error {
	logger := ctxlog.From(ctx)

	releaseEvent, ok := payload.(*github.ReleaseEvent)
	if !ok {
		logger.Warn("Invalid release event payload")
		return nil
	}

	action := releaseEvent.GetAction()
	if action != "published" && action != "released" {
		logger.Info("Ignoring release event with non-publish action", "action", action)
		return nil
	}

	rec, err := extractReleaseRecord(releaseEvent)
	if err != nil {
		logger.Error("Failed to extract release record", "error", err)
		return err
	}

	logger.Info("Announcing release from webhook event",
		"repository", releaseEvent.GetRepo().GetFullName(),
		"tag", releaseEvent.GetRelease().GetTagName(),
		"name", rec.Name,
	)

	return p.notifyUC.Announce(ctx, rec)
}

// extractReleaseRecord maps a release event onto the record the
// notification stage consumes
func extractReleaseRecord(event *github.ReleaseEvent) (*model.ReleaseRecord, error) {
	release := event.GetRelease()
	if release == nil {
		return nil, goerr.New("missing release information in release event")
	}

	name := release.GetName()
	if name == "" {
		name = release.GetTagName()
	}
	if name == "" {
		return nil, goerr.New("release event carries neither a name nor a tag")
	}

	return &model.ReleaseRecord{
		Version: strings.TrimPrefix(release.GetTagName(), "v"),
		Name:    name,
		Body:    release.GetBody(),
		URL:     release.GetHTMLURL(),
	}, nil
}
