package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации сервиса
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса, загружается из config.toml один раз при старте
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Customer CustomerService `toml:"customer_service"`
	Schedule ScheduleConfig  `toml:"schedule"`
	Services []ServiceConfig `toml:"services"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CustomerService настройки интеграции с сервисом клиентов
type CustomerService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ScheduleConfig декларативное описание рабочих часов мастерской
// Воскресенье не конфигурируется - закрыто всегда
type ScheduleConfig struct {
	SlotStepMinutes int           `toml:"slot_step_minutes"`
	WeekdayShifts   []ShiftConfig `toml:"weekday_shifts"`
	SaturdayShifts  []ShiftConfig `toml:"saturday_shifts"`
}

// ShiftConfig рабочая смена внутри дня
type ShiftConfig struct {
	StartHour     int   `toml:"start_hour"`
	EndHour       int   `toml:"end_hour"`
	ExcludedHours []int `toml:"excluded_hours"`
}

// ServiceConfig бронируемая услуга
type ServiceConfig struct {
	ID        int64   `toml:"id"`
	Name      string  `toml:"name"`
	Price     float64 `toml:"price"`
	SlotCount int     `toml:"slot_count"`
}

// Load читает и валидирует конфигурацию из TOML файла
// При невалидном расписании возвращает ошибку: сервис не должен стартовать
// с частичной или пустой конфигурацией
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// BusinessHours собирает доменную модель рабочих часов из конфигурации
func (c *Config) BusinessHours() domain.BusinessHours {
	return domain.BusinessHours{
		WeekdayShifts:   toDomainShifts(c.Schedule.WeekdayShifts),
		SaturdayShifts:  toDomainShifts(c.Schedule.SaturdayShifts),
		SlotStepMinutes: c.Schedule.SlotStepMinutes,
	}
}

// ServiceCatalog собирает каталог услуг из конфигурации
func (c *Config) ServiceCatalog() []domain.Service {
	services := make([]domain.Service, 0, len(c.Services))
	for _, s := range c.Services {
		slotCount := s.SlotCount
		if slotCount == 0 {
			slotCount = domain.DefaultServiceSlotCount
		}
		services = append(services, domain.Service{
			ID:        s.ID,
			Name:      s.Name,
			Price:     s.Price,
			SlotCount: slotCount,
		})
	}
	return services
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "workshop-service"
	}
	if cfg.Schedule.SlotStepMinutes == 0 {
		cfg.Schedule.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
}

func (c *Config) validate() error {
	// Расписание валидируется доменной моделью; ошибки конфигурации фатальны
	hours := c.BusinessHours()
	if err := hours.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[int64]struct{}, len(c.Services))
	for _, s := range c.Services {
		if s.ID <= 0 {
			return fmt.Errorf("%w: service id must be positive, got %d", ErrInvalidConfig, s.ID)
		}
		if s.Name == "" {
			return fmt.Errorf("%w: service id=%d has empty name", ErrInvalidConfig, s.ID)
		}
		if s.SlotCount < 0 || s.SlotCount > domain.MaxServiceSlotCount {
			return fmt.Errorf("%w: service id=%d slot count %d is out of range", ErrInvalidConfig, s.ID, s.SlotCount)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: duplicate service id=%d", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}

func toDomainShifts(shifts []ShiftConfig) []domain.Shift {
	result := make([]domain.Shift, 0, len(shifts))
	for _, s := range shifts {
		result = append(result, domain.Shift{
			StartHour:     s.StartHour,
			EndHour:       s.EndHour,
			ExcludedHours: s.ExcludedHours,
		})
	}
	return result
}
