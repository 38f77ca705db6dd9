package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const sendConfirmationPath = "/api/send-confirmation"

// Client клиент для работы с эндпоинтом писем с подтверждением
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиент mailer; timeout ограничивает каждый запрос
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation отправляет запрос на подтверждение. Любой статус кроме 2xx считается ошибкой.
func (c *Client) SendConfirmation(ctx context.Context, confirmation *ConfirmationRequest) error {
	body, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendConfirmationPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrRejected, readError(resp.Body))
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// продолжаем
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, readError(resp.Body))
	}

	var result ConfirmationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !result.Success {
		return fmt.Errorf("%w: success=false", ErrInvalidResponse)
	}

	c.log.Info("Mailer: confirmation accepted for %s, id=%s", confirmation.Email, result.Data.ID)
	return nil
}

// readError достает поле error из тела ошибки, иначе возвращает текст как есть
func readError(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(body))
}
