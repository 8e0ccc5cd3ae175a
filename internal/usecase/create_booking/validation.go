package create_booking

import (
	"fmt"
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.GroundID <= 0 {
		return fmt.Errorf("%w: groundID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if req.EndTime.Sub(req.StartTime) > domain.MaxBookingHours*time.Hour {
		return fmt.Errorf("%w: booking longer than %d hours", ErrInvalidInput, domain.MaxBookingHours)
	}

	for _, svc := range req.Services {
		if svc.ServiceID <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if svc.Quantity <= 0 || svc.Quantity > domain.MaxServiceQuantity {
			return fmt.Errorf("%w: service quantity must be in [1, %d]", ErrInvalidInput, domain.MaxServiceQuantity)
		}
	}

	return nil
}

// resolveServiceItems сопоставляет запрошенные услуги с каталогом поля
// Цены берутся только из каталога - присланные клиентом значения не участвуют
func resolveServiceItems(field *domain.Field, requested []RequestedService) ([]domain.ServiceItem, error) {
	items := make([]domain.ServiceItem, 0, len(requested))

	for _, svc := range requested {
		catalogService := field.ServiceByID(svc.ServiceID)
		if catalogService == nil {
			return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotFound, svc.ServiceID)
		}

		items = append(items, domain.ServiceItem{
			ServiceID: catalogService.ID,
			Name:      catalogService.Name,
			Price:     catalogService.Price,
			Quantity:  svc.Quantity,
		})
	}

	return items, nil
}
