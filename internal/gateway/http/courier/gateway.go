package courier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "courier-endpoint"

	maxResponseBody = 4 << 10
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// statusError сохраняет HTTP-код ответа для решения о ретрае и для метрик.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("courier endpoint responded %d: %s", e.code, e.body)
}

// Gateway доставляет подписанные callback'и на endpoint курьерской системы.
// Тело запроса приходит уже сериализованным и подписанным: гейтвей не
// трогает байты, иначе подпись перестанет сходиться с телом.
type Gateway struct {
	client      httpClient
	retrier     retrier
	callbackURL string
}

func New(client httpClient, callbackURL string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:      client,
		retrier:     backoff_adapter.New(retryConfig),
		callbackURL: callbackURL,
	}
}

func (g *Gateway) Send(ctx context.Context, payload []byte, authHeader string) (string, error) {
	var message string

	err := g.executeWithMetrics(ctx, "Callback", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.callbackURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", authHeader)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return &statusError{code: resp.StatusCode, body: string(body)}
		}

		message = string(body)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("gateway courier, send callback: %w", err)
	}

	return message, nil
}

// 429 и 5xx считаем временными, 4xx кроме 429 - нет: повтор с той же
// подписью даст тот же отказ. Сетевые ошибки ретраятся всегда.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var st *statusError
	if errors.As(err, &st) {
		return st.code == http.StatusTooManyRequests || st.code >= http.StatusInternalServerError
	}
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}

	var st *statusError
	if errors.As(err, &st) {
		return strconv.Itoa(st.code)
	}
	return "network_error"
}
