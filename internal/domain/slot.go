package domain

// TimeSlot время дня, доступное для бронирования
type TimeSlot struct {
	ID          string
	DisplayTime string
	Label       string
}

// DefaultSlots единственный вечерний слот на каждую открытую дату
var DefaultSlots = []TimeSlot{
	{ID: "evening", DisplayTime: "5:00 PM", Label: "Evening"},
}

// FindSlot возвращает слот с заданным id
func FindSlot(slots []TimeSlot, id string) (TimeSlot, bool) {
	for _, slot := range slots {
		if slot.ID == id {
			return slot, true
		}
	}
	return TimeSlot{}, false
}
