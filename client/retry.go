package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// RetryTransport retries Bot API calls on transport errors, 5xx answers
// and flood control (429), waiting retry_after seconds when Telegram
// provides it.
type RetryTransport struct {
	Base    http.RoundTripper
	Retries int
	Wait    time.Duration
}

func (t *RetryTransport) base() http.RoundTripper {
	if t.Base == nil {
		return http.DefaultTransport
	}

	return t.Base
}

func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	retries := t.Retries

	if !replayable(req) {
		retries = 0
	}

	for attempt := 0; attempt <= retries; attempt++ {
		attemptReq := req

		if attempt > 0 {
			if attemptReq, err = cloneRequest(req); err != nil {
				return nil, err
			}
		}

		resp, err = t.base().RoundTrip(attemptReq)
		wait := t.Wait

		log := logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"path":    req.URL.Path,
		})

		switch {
		case err != nil:
			log.WithError(err).Warn("telegram request failed")

		case isRetryableStatus(resp.StatusCode):
			log.WithField("status", resp.StatusCode).Warn("telegram server error")

		case resp.StatusCode == http.StatusTooManyRequests:
			retryAfter := readRetryAfter(resp)

			if retryAfter > 0 {
				wait = time.Duration(retryAfter) * time.Second
			}

			log.WithField("wait", wait).Warn("telegram flood control")

		default:
			return resp, nil
		}

		if attempt == retries {
			break
		}

		if resp != nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}
	}

	return resp, err
}

func isRetryableStatus(status int) bool {
	return status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout ||
		status == http.StatusBadGateway ||
		status == http.StatusInternalServerError
}

// readRetryAfter consumes the body and puts an identical reader back so the
// response can still be handed to the caller.
func readRetryAfter(resp *http.Response) int {
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))

	var tgError tgbotapi.APIResponse

	if err := json.Unmarshal(body, &tgError); err != nil {
		return 0
	}

	if tgError.ErrorCode != http.StatusTooManyRequests || tgError.Parameters == nil {
		return 0
	}

	return tgError.Parameters.RetryAfter
}

// replayable reports whether req can be sent again: either it has no body
// or the body can be recreated with GetBody.
func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

// cloneRequest copies req for another attempt with a fresh body, leaving
// the caller's request untouched.
func cloneRequest(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())

	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}

	body, err := req.GetBody()

	if err != nil {
		return nil, err
	}

	clone.Body = body

	return clone, nil
}
