package notify

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

const completionMessage = "Branch protection audit complete."

// Notifier delivers the run-completion notice. Implementations never
// retry; a delivery failure surfaces as the returned error and the caller
// logs it.
type Notifier interface {
	Notify(ctx context.Context, reportPath string) error
}

// New picks the delivery channel from the configured credentials. A bot
// token plus channel wins over a webhook because only the bot API can
// attach the report file; with neither configured the notifier only logs.
func New(botToken, channel, webhookURL string, log *slog.Logger) Notifier {
	httpClient := &http.Client{Timeout: 60 * time.Second}

	switch {
	case botToken != "" && channel != "":
		api := slack.New(botToken, slack.OptionHTTPClient(httpClient))
		return &uploadNotifier{uploader: api, channel: channel, log: log}
	case webhookURL != "":
		return &webhookNotifier{url: webhookURL, client: httpClient, log: log}
	default:
		return &noopNotifier{log: log}
	}
}

type noopNotifier struct {
	log *slog.Logger
}

func (n *noopNotifier) Notify(ctx context.Context, reportPath string) error {
	n.log.Warn("no notification configured, results only written locally", "path", reportPath)
	return nil
}
