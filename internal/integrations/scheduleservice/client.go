package scheduleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ScheduleService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ScheduleService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSlots получает открытые слоты ресурса за период [from, to]
func (c *Client) GetSlots(ctx context.Context, resourceID int64, from, to time.Time) (domain.SlotMap, error) {
	query := url.Values{}
	query.Set("from", from.Format(domain.DateFormat))
	query.Set("to", to.Format(domain.DateFormat))
	endpoint := fmt.Sprintf("%s/internal/resources/%d/slots?%s", c.baseURL, resourceID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("GetSlots: request for resource=%d failed: %v", resourceID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrResourceNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var slotsResp SlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&slotsResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	slots, err := slotsResp.toDomain()
	if err != nil {
		return nil, err
	}

	c.log.Info("GetSlots: resource=%d, %s..%s: %d days, %d slots",
		resourceID, from.Format(domain.DateFormat), to.Format(domain.DateFormat), len(slots), slots.SlotCount())
	return slots, nil
}

// toDomain конвертирует ответ в SlotMap, сохраняя порядок дней и слотов
func (r *SlotsResponse) toDomain() (domain.SlotMap, error) {
	result := make(domain.SlotMap, 0, len(r.Days))
	for _, day := range r.Days {
		date, err := time.Parse(domain.DateFormat, day.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidResponse, day.Date)
		}

		slots := make([]domain.Slot, 0, len(day.Slots))
		for _, s := range day.Slots {
			t, err := types.NewTimeStringFromString(s.Time)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid slot time %q on %s", ErrInvalidResponse, s.Time, day.Date)
			}
			slots = append(slots, domain.Slot{Time: t, Payload: s.Data})
		}

		result = append(result, domain.DaySlots{Date: date, Slots: slots})
	}
	return result, nil
}
