package decide_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.NotificationID <= 0 {
		return fmt.Errorf("%w: notificationID must be positive", ErrInvalidInput)
	}

	if !req.Decision.IsValid() {
		return fmt.Errorf("%w: decision must be accept or decline", ErrInvalidInput)
	}

	return nil
}
