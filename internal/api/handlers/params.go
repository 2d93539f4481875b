package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// ErrMissingParam параметр не передан
var ErrMissingParam = errors.New("missing parameter")

// PathID парсит положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	return parsePositiveID(mux.Vars(r)[name])
}

// QueryInt парсит целое число из query параметра
func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, ErrMissingParam
	}
	return strconv.Atoi(raw)
}

// QueryDate парсит дату YYYY-MM-DD; nil, если параметр не передан
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// QueryTime парсит время HH:MM; nil, если параметр не передан
func QueryTime(r *http.Request, name string) (*types.TimeString, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parsePositiveID(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrMissingParam
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
