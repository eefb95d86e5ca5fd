package discord_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/herald-dev/herald/pkg/domain/model"
	"github.com/herald-dev/herald/pkg/infra/discord"
)

func TestClient_Send_Success(t *testing.T) {
	var gotQuery string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPost)
		gt.Value(t, r.Header.Get("Content-Type")).Equal("application/json")
		gotQuery = r.URL.RawQuery

		raw, err := io.ReadAll(r.Body)
		gt.NoError(t, err)
		gt.NoError(t, json.Unmarshal(raw, &gotBody))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := discord.NewClient(server.URL)
	err := client.Send(context.Background(), &model.NotificationPayload{
		Title:       "v1.2.3",
		URL:         "https://github.com/o/r/releases/tag/1.2.3",
		Description: "release notes",
		Content:     "A new release is out!",
	})
	gt.NoError(t, err)

	gt.Value(t, gotQuery).Equal("wait=true")
	gt.Value(t, gotBody["content"]).Equal("A new release is out!")

	embeds, ok := gotBody["embeds"].([]any)
	gt.Value(t, ok).Equal(true)
	gt.Number(t, len(embeds)).Equal(1)

	embed, ok := embeds[0].(map[string]any)
	gt.Value(t, ok).Equal(true)
	gt.Value(t, embed["title"]).Equal("v1.2.3")
	gt.Value(t, embed["url"]).Equal("https://github.com/o/r/releases/tag/1.2.3")
	gt.Value(t, embed["description"]).Equal("release notes")

	// The footer object must be present even when empty
	_, hasFooter := embed["footer"]
	gt.Value(t, hasFooter).Equal(true)
}

func TestClient_Send_OmitsEmptyContent(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := discord.NewClient(server.URL)
	err := client.Send(context.Background(), &model.NotificationPayload{
		Title:       "v1.0.0",
		Description: "notes",
	})
	gt.NoError(t, err)

	_, hasContent := gotBody["content"]
	gt.Value(t, hasContent).Equal(false)
}

func TestClient_Send_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "Invalid Webhook Token"}`))
	}))
	defer server.Close()

	client := discord.NewClient(server.URL)
	err := client.Send(context.Background(), &model.NotificationPayload{
		Title:       "v1.0.0",
		Description: "notes",
	})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("rejected")
}

func TestClient_Send_NetworkError(t *testing.T) {
	// Endpoint that is not listening
	client := discord.NewClient("http://127.0.0.1:1")
	err := client.Send(context.Background(), &model.NotificationPayload{
		Title:       "v1.0.0",
		Description: "notes",
	})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to post webhook")
}
