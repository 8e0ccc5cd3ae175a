package fieldservice

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено в каталоге
	ErrFieldNotFound = errors.New("fieldservice: field not found")

	// ErrInvalidResponse возвращается при некорректном ответе FieldService
	ErrInvalidResponse = errors.New("fieldservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fieldservice: internal error")
)
