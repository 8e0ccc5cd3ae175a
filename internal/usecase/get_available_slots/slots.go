package get_available_slots

import (
	"time"

	"github.com/fieldbook/FieldBookingService/internal/domain"
)

// resolveDaySlots разворачивает шаблон дня недели в последовательность слотов
// Если в шаблоне слоты перечислены явно (TimeSlots), они возвращаются как есть.
// Иначе слоты генерируются от времени открытия до закрытия с шагом slotDuration;
// слот, не помещающийся до закрытия целиком, не включается.
// Закрытый день даёт пустую последовательность - это не ошибка
func resolveDaySlots(day domain.DaySchedule, slotDuration int) ([]domain.SlotTemplate, error) {
	if !day.IsOpen {
		return []domain.SlotTemplate{}, nil
	}

	if len(day.TimeSlots) > 0 {
		return day.TimeSlots, nil
	}

	if day.OpenTime == nil || day.CloseTime == nil {
		return []domain.SlotTemplate{}, nil
	}

	openTime := *day.OpenTime
	closeTime := *day.CloseTime

	slots := make([]domain.SlotTemplate, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, domain.SlotTemplate{StartTime: current, EndTime: slotEnd})
		current = slotEnd
	}

	return slots, nil
}

// markAvailability размечает слоты шаблона признаком доступности
// Слот недоступен, если его начало не строго в будущем, либо если на площадке
// уже есть занятый слот с точно таким же временем начала.
// Проверка занятости ведётся по точному совпадению начала слота, не по
// пересечению интервалов - бронирования привязаны к сетке слотов
func markAvailability(
	templates []domain.SlotTemplate,
	date time.Time,
	now time.Time,
	occupied domain.OccupiedSlots,
) ([]domain.AvailableSlot, error) {
	slots := make([]domain.AvailableSlot, 0, len(templates))

	for _, tmpl := range templates {
		start, err := tmpl.StartTime.OnDate(date)
		if err != nil {
			return nil, err
		}

		available := start.After(now) && !occupied.IsStartTaken(start)

		slots = append(slots, domain.AvailableSlot{
			StartTime: tmpl.StartTime,
			EndTime:   tmpl.EndTime,
			Available: available,
		})
	}

	return slots, nil
}

// dayBounds возвращает границы календарного дня [начало, начало следующего)
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
