package notifications

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование уведомления не найдено
	ErrBookingNotFound = errors.New("notifications.service: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("notifications.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications.service: internal error")
)
