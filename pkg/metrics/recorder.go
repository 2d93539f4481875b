package metrics

// Recorder записывает бизнес-метрики
// Nil-receiver безопасен: при выключенных метриках передаётся nil
type Recorder struct {
	m *Metrics
}

// Recorder возвращает Recorder для бизнес-метрик
func (m *Metrics) Recorder() *Recorder {
	if m == nil {
		return nil
	}
	return &Recorder{m: m}
}

// AvailabilityDecision учитывает результат проверки доступности
func (r *Recorder) AvailabilityDecision(result string) {
	if r == nil {
		return
	}
	r.m.AvailabilityDecisions.WithLabelValues(result).Inc()
}

// BookingConflict учитывает бронирование, отклонённое из-за заполненного слота
func (r *Recorder) BookingConflict() {
	if r == nil {
		return
	}
	r.m.BookingConflicts.WithLabelValues().Inc()
}

// QuoteCache учитывает обращение к кэшу расчётов цены
func (r *Recorder) QuoteCache(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.m.QuoteCacheRequests.WithLabelValues(result).Inc()
}

// HoldsExpired учитывает освобождённые удержания
func (r *Recorder) HoldsExpired(count int) {
	if r == nil || count <= 0 {
		return
	}
	r.m.ExpiredHolds.WithLabelValues().Add(float64(count))
}
