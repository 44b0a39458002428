package catalog

import (
	"errors"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")
)

// Catalog каталог бронируемых услуг мастерской
// Загружается из конфигурации при старте и неизменяем в рантайме
type Catalog struct {
	byID map[int64]domain.Service
	all  []domain.Service
}

// New создает каталог услуг
func New(services []domain.Service) *Catalog {
	byID := make(map[int64]domain.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	return &Catalog{
		byID: byID,
		all:  services,
	}
}

// ByID возвращает услугу по ID
func (c *Catalog) ByID(id int64) (*domain.Service, error) {
	service, ok := c.byID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return &service, nil
}

// All возвращает все услуги каталога
func (c *Catalog) All() []domain.Service {
	return c.all
}
