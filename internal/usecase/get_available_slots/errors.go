package get_available_slots

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("get_available_slots: field not found")

	// ErrGroundNotFound возвращается, когда площадка не найдена на поле
	ErrGroundNotFound = errors.New("get_available_slots: ground not found")

	// ErrGroundInactive возвращается, когда площадка отключена владельцем
	ErrGroundInactive = errors.New("get_available_slots: ground is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
