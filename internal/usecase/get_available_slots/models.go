package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ResourceID int64     // ID ресурса
	Quantity   int       // Размер группы
	From       time.Time // Начало периода (без времени)
	To         time.Time // Конец периода включительно
}

// Response модель ответа со слотами, вмещающими группу
type Response struct {
	ResourceID int64
	Quantity   int
	From       time.Time
	To         time.Time
	Days       domain.SlotMap // Дни без подходящих слотов не включаются
}
