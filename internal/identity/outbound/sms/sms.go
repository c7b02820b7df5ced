// Package sms delivers one-time passcodes through the Twilio Messages API.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
)

const defaultBaseURL = "https://api.twilio.com"

// Options carries the provider credentials. Leave AccountSID or AuthToken
// empty to run without a provider; callers then disclose codes in-band.
type Options struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	// BaseURL overrides the Twilio endpoint, used in tests.
	BaseURL string
}

type Twilio struct {
	opts   Options
	client *http.Client
	ins    instrument.Instrumentation
}

func NewTwilio(opts Options, ins instrument.Instrumentation) *Twilio {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	return &Twilio{
		opts:   opts,
		client: &http.Client{Timeout: 10 * time.Second},
		ins:    ins,
	}
}

// Enabled reports whether provider credentials are configured.
func (t *Twilio) Enabled() bool {
	return t.opts.AccountSID != "" && t.opts.AuthToken != ""
}

// Send posts the message to the Twilio Messages API.
func (t *Twilio) Send(ctx context.Context, to, body string) error {
	ctx, span := t.ins.Tracer("identity.outbound.sms").Start(ctx, "Send")
	defer span.End()

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.opts.FromNumber)
	form.Set("Body", body)

	endpoint := t.opts.BaseURL + "/2010-04-01/Accounts/" + url.PathEscape(t.opts.AccountSID) + "/Messages.json"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	req.SetBasicAuth(t.opts.AccountSID, t.opts.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("sms: provider responded with status %d", resp.StatusCode)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
