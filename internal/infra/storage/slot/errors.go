package slot

import "errors"

var (
	// ErrSlotTaken возвращается при нарушении уникальности (ground_id, start_time)
	// Это основная защита от двойного бронирования одного слота
	ErrSlotTaken = errors.New("slot.repository: slot already taken")

	// ErrSlotNotFound возвращается, когда занятый слот не найден
	ErrSlotNotFound = errors.New("slot.repository: occupied slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
