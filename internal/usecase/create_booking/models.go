package create_booking

import (
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64            // ID пользователя
	ResourceID int64            // ID ресурса
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала слота (например, "10:00")
	Quantity   int              // Размер группы
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	ResourceID    int64
	UserID        int64
	BookingDate   time.Time
	StartTime     types.TimeString
	Quantity      int
	Status        string
	TotalPrice    float64
	Breakdown     []domain.PriceLine
	HoldExpiresAt *time.Time // nil, если бронирование подтверждено сразу
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
