package model_test

import (
	"testing"

	"github.com/herald-dev/herald/pkg/domain/model"
)

func TestWebhookEvent_IsSupportedEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    *model.WebhookEvent
		expected bool
	}{
		{
			name: "Release published - supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypeRelease,
				Action: "published",
			},
			expected: true,
		},
		{
			name: "Release released - supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypeRelease,
				Action: "released",
			},
			expected: true,
		},
		{
			name: "Release created - not supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypeRelease,
				Action: "created",
			},
			expected: false,
		},
		{
			name: "Release edited - not supported",
			event: &model.WebhookEvent{
				Type:   model.EventTypeRelease,
				Action: "edited",
			},
			expected: false,
		},
		{
			name: "Unknown event type",
			event: &model.WebhookEvent{
				Type:   model.EventTypeUnknown,
				Action: "published",
			},
			expected: false,
		},
		{
			name: "Different event type",
			event: &model.WebhookEvent{
				Type:   model.WebhookEventType("issues"),
				Action: "opened",
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.IsSupportedEvent()
			if got != tt.expected {
				t.Errorf("IsSupportedEvent() = %v, want %v", got, tt.expected)
			}
		})
	}
}
