package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/slack-go/slack"
)

// uploader is the slice of the slack-go client the upload path needs.
type uploader interface {
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
}

type uploadNotifier struct {
	uploader uploader
	channel  string
	log      *slog.Logger
}

func (n *uploadNotifier) Notify(ctx context.Context, reportPath string) error {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}

	n.log.Debug("uploading report", "channel", n.channel, "bytes", len(data))

	_, err = n.uploader.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Channel:        n.channel,
		Reader:         bytes.NewReader(data),
		FileSize:       len(data),
		Filename:       filepath.Base(reportPath),
		InitialComment: completionMessage + " Results attached.",
	})
	if err != nil {
		return fmt.Errorf("uploading report to slack: %w", err)
	}
	return nil
}

type webhookNotifier struct {
	url    string
	client *http.Client
	log    *slog.Logger
}

// Notify posts the text-only completion message. Webhooks cannot carry
// file attachments, so the report stays local.
func (n *webhookNotifier) Notify(ctx context.Context, reportPath string) error {
	n.log.Debug("posting webhook notification")

	msg := slack.WebhookMessage{
		Text: fmt.Sprintf("%s Report written to %s (webhook cannot attach files).", completionMessage, filepath.Base(reportPath)),
	}
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.url, n.client, &msg); err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	return nil
}
