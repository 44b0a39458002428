package domain

// Service бронируемая услуга мастерской
// SlotCount - сколько последовательных слотов занимает услуга (класс длительности)
type Service struct {
	ID        int64
	Name      string
	Price     float64
	SlotCount int
}

// IsLongDuration returns true if the service occupies more than one slot
func (s *Service) IsLongDuration() bool {
	return s.SlotCount > 1
}
