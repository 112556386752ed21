package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/google/uuid"
)

// ErrRejected API ответило не-2xx статусом
var ErrRejected = errors.New("scheduling api rejected request")

// Endpoint семейства эндпоинтов, куда отправляется запрос
const (
	EndpointBookings    = "/bookings"
	EndpointOffers      = "/offers"
	EndpointGroupOffers = "/offers/group"
)

// Parties участники занятия. В тело запроса не входят и передаются заголовками.
type Parties struct {
	MentorID  int64
	LearnerID int64
}

// Receipt ответ API на принятый запрос
type Receipt struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	IdempotencyKey string `json:"-"`
}

// Client отправляет готовый BookingRequest во внешний сервис расписания.
// Повторов нет: решение о повторной отправке принимает вызывающий код.
type Client struct {
	hc      *http.Client
	baseURL string
	token   string
	newKey  func() string
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		newKey:  func() string { return uuid.NewString() },
	}
}

// EndpointFor выбирает эндпоинт по происхождению запроса и типу занятия
func EndpointFor(origin model.Origin, req model.BookingRequest) (string, error) {
	switch origin {
	case model.OriginBooking:
		return EndpointBookings, nil
	case model.OriginOffer:
		if req.IsGroup() {
			return EndpointGroupOffers, nil
		}
		return EndpointOffers, nil
	default:
		return "", fmt.Errorf("unknown request origin %q", origin)
	}
}

// Submit отправляет запрос одним POST
func (c *Client) Submit(ctx context.Context, origin model.Origin, parties Parties, req model.BookingRequest) (*Receipt, error) {
	endpoint, err := EndpointFor(origin, req)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	key := c.newKey()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Idempotency-Key", key)
	httpReq.Header.Set("X-Mentor-Id", strconv.FormatInt(parties.MentorID, 10))
	httpReq.Header.Set("X-Learner-Id", strconv.FormatInt(parties.LearnerID, 10))
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.Unmarshal(respBody, &apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		if msg != "" {
			return nil, fmt.Errorf("%w: %s (status=%d)", ErrRejected, msg, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w (status=%d)", ErrRejected, resp.StatusCode)
	}

	receipt := &Receipt{IdempotencyKey: key}
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, receipt); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}

	return receipt, nil
}
