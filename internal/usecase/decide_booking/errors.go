package decide_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("decide_booking: booking not found")

	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("decide_booking: notification not found")

	// ErrNotificationMismatch возвращается, когда уведомление относится
	// к другому бронированию
	ErrNotificationMismatch = errors.New("decide_booking: notification does not match booking")

	// ErrAlreadyResolved возвращается при повторном решении по бронированию
	// Оба перехода (pending -> accepted, pending -> declined) терминальны
	ErrAlreadyResolved = errors.New("decide_booking: booking already resolved")

	// ErrAccessDenied возвращается, когда решение принимает не владелец поля
	ErrAccessDenied = errors.New("decide_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("decide_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_booking: internal error")
)
