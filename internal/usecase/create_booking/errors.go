package create_booking

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("create_booking: field not found")

	// ErrGroundNotFound возвращается, когда площадка не найдена на поле
	ErrGroundNotFound = errors.New("create_booking: ground not found")

	// ErrGroundInactive возвращается, когда площадка отключена владельцем
	ErrGroundInactive = errors.New("create_booking: ground is inactive")

	// ErrServiceNotFound возвращается, когда запрошенная услуга отсутствует на поле
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotNotAvailable возвращается, когда слот недоступен: время начала
	// в прошлом либо слот уже занят другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
