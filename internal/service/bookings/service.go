package bookings

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	// Удержание могло истечь до очередного запуска воркера
	if booking.IsHoldExpired(s.timeProvider.Now()) {
		booking.Status = domain.StatusExpired
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя с опциональным фильтром по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", req.UserID)

	var status *domain.BookingStatus
	if req.Status != nil {
		st := domain.BookingStatus(*req.Status)
		if !st.IsValid() {
			s.logger.Warn("GetUserBookings: unknown status %q", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = &st
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: found %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование владельцем
// Отмена освобождает места слота сразу после коммита
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if req.CancellationReason != nil && utf8.RuneCountInString(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	booking, err := s.getOwned(ctx, "Cancel", bookingID, req.UserID)
	if err != nil {
		return err
	}

	// Проверяем статус до обращения к хранилищу, чтобы вернуть понятную ошибку
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason, s.timeProvider.Now()); err != nil {
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			// Статус изменился между чтением и обновлением
			s.logger.Warn("Cancel: booking id=%d changed status concurrently", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Confirm подтверждает удержание мест, пока оно не истекло
func (s *Service) Confirm(ctx context.Context, bookingID int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getOwned(ctx, "Confirm", bookingID, userID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if !booking.CanBeConfirmed(now) {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", bookingID, booking.Status)
		return nil, ErrCannotConfirm
	}

	if err := s.bookingRepo.Confirm(ctx, bookingID, now); err != nil {
		if errors.Is(err, bookingRepo.ErrCannotConfirm) {
			s.logger.Warn("Confirm: hold of booking id=%d expired concurrently", bookingID)
			return nil, ErrCannotConfirm
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	booking.HoldExpiresAt = nil
	booking.UpdatedAt = now

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

// getOwned загружает бронирование и проверяет, что пользователь его владелец
func (s *Service) getOwned(ctx context.Context, op string, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, userID, bookingID)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
