package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/infra"
	"github.com/m-mizutani/goerr/v2"
)

// snsMessage is the envelope Amazon SNS delivers to HTTPS endpoints. Only
// the fields the handler consumes are declared.
type snsMessage struct {
	Type         string `json:"Type"`
	MessageID    string `json:"MessageId"`
	TopicArn     string `json:"TopicArn"`
	Subject      string `json:"Subject"`
	Message      string `json:"Message"`
	Timestamp    string `json:"Timestamp"`
	SubscribeURL string `json:"SubscribeURL"`
}

func parseSNSMessage(r *http.Request) (*snsMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read SNS message body")
	}

	var msg snsMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedEvent, "invalid SNS envelope",
			goerr.V("error", err.Error()))
	}

	return &msg, nil
}

// confirmSubscription completes the SNS subscription handshake by fetching
// the SubscribeURL the notification carries.
func confirmSubscription(r *http.Request, httpClient infra.HTTPClient, msg *snsMessage) error {
	if msg.SubscribeURL == "" {
		return goerr.Wrap(types.ErrMalformedEvent, "subscription confirmation without SubscribeURL")
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, msg.SubscribeURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build subscription confirmation request")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to confirm SNS subscription",
			goerr.V("url", msg.SubscribeURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.New("SNS subscription confirmation rejected",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", msg.SubscribeURL))
	}

	return nil
}

// decodeNotification extracts the lint target from an SNS notification. A
// nil target with nil error means the event is not one the handler acts on.
func decodeNotification(r *http.Request, uc interfaces.UseCase, msg *snsMessage) (*model.LintTarget, error) {
	if msg.Subject == "" {
		return nil, goerr.Wrap(types.ErrMalformedEvent, "notification without subject")
	}

	return uc.DecodeTarget(r.Context(), msg.Subject, []byte(msg.Message))
}
