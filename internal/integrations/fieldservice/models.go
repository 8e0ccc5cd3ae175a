package fieldservice

import (
	"fmt"

	"github.com/fieldbook/FieldBookingService/internal/domain"
	"github.com/fieldbook/FieldBookingService/pkg/types"
)

// fieldPayload wire-модель поля из FieldService
type fieldPayload struct {
	ID                  int64                  `json:"id"`
	OwnerID             int64                  `json:"ownerId"`
	Name                string                 `json:"name"`
	Address             string                 `json:"address"`
	BasePrice           float64                `json:"basePrice"`
	SlotDurationMinutes int                    `json:"slotDurationMinutes"`
	Grounds             []groundPayload        `json:"grounds"`
	Services            []servicePayload       `json:"services"`
	OperatingHours      []operatingHourPayload `json:"operatingHours"`
}

type groundPayload struct {
	ID           int64   `json:"id"`
	GroundNumber int     `json:"groundNumber"`
	Name         string  `json:"name"`
	Size         string  `json:"size"`
	Material     string  `json:"material"`
	PricePerHour float64 `json:"pricePerHour"`
	Active       bool    `json:"active"`
}

type servicePayload struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

// operatingHourPayload расписание на один день недели
// Либо задаются openTime/closeTime (слоты генерируются с шагом
// slotDurationMinutes), либо слоты перечислены явно в timeSlots
type operatingHourPayload struct {
	DayOfWeek int               `json:"dayOfWeek"` // 0 = Sunday ... 6 = Saturday
	OpenTime  *string           `json:"openTime,omitempty"`
	CloseTime *string           `json:"closeTime,omitempty"`
	TimeSlots []timeSlotPayload `json:"timeSlots,omitempty"`
}

type timeSlotPayload struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// toDomain конвертирует wire-модель в доменную
// Дни недели, отсутствующие в operatingHours, считаются выходными
func (p *fieldPayload) toDomain() (*domain.Field, error) {
	field := &domain.Field{
		ID:                  p.ID,
		OwnerID:             p.OwnerID,
		Name:                p.Name,
		Address:             p.Address,
		BasePrice:           p.BasePrice,
		SlotDurationMinutes: p.SlotDurationMinutes,
	}

	if field.SlotDurationMinutes <= 0 {
		field.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}

	for _, g := range p.Grounds {
		field.Grounds = append(field.Grounds, domain.Ground{
			ID:           g.ID,
			GroundNumber: g.GroundNumber,
			Name:         g.Name,
			Size:         g.Size,
			Material:     g.Material,
			PricePerHour: g.PricePerHour,
			Active:       g.Active,
		})
	}

	for _, s := range p.Services {
		field.Services = append(field.Services, domain.FieldService{
			ID:    s.ID,
			Name:  s.Name,
			Type:  s.Type,
			Price: s.Price,
		})
	}

	for _, oh := range p.OperatingHours {
		if oh.DayOfWeek < 0 || oh.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w: day of week %d out of range", ErrInvalidResponse, oh.DayOfWeek)
		}

		day := domain.DaySchedule{IsOpen: true}

		if oh.OpenTime != nil {
			ts, err := types.NewTimeStringFromString(*oh.OpenTime)
			if err != nil {
				return nil, fmt.Errorf("%w: open time: %v", ErrInvalidResponse, err)
			}
			day.OpenTime = &ts
		}
		if oh.CloseTime != nil {
			ts, err := types.NewTimeStringFromString(*oh.CloseTime)
			if err != nil {
				return nil, fmt.Errorf("%w: close time: %v", ErrInvalidResponse, err)
			}
			day.CloseTime = &ts
		}

		for _, slot := range oh.TimeSlots {
			start, err := types.NewTimeStringFromString(slot.StartTime)
			if err != nil {
				return nil, fmt.Errorf("%w: slot start time: %v", ErrInvalidResponse, err)
			}
			end, err := types.NewTimeStringFromString(slot.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: slot end time: %v", ErrInvalidResponse, err)
			}
			day.TimeSlots = append(day.TimeSlots, domain.SlotTemplate{StartTime: start, EndTime: end})
		}

		field.Schedule[oh.DayOfWeek] = day
	}

	return field, nil
}
