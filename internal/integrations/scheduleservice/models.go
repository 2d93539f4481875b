package scheduleservice

import "encoding/json"

// SlotsResponse ответ ScheduleService со слотами ресурса
// Дни и слоты внутри дня упорядочены по возрастанию
type SlotsResponse struct {
	ResourceID int64     `json:"resource_id"`
	Days       []DayJSON `json:"days"`
}

// DayJSON открытые слоты одного дня
type DayJSON struct {
	Date  string     `json:"date"` // "2025-10-15"
	Slots []SlotJSON `json:"slots"`
}

// SlotJSON открытый слот; Data передается вызывающей стороне без изменений
type SlotJSON struct {
	Time string          `json:"time"` // "10:00"
	Data json.RawMessage `json:"data,omitempty"`
}
