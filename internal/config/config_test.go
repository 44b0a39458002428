package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "workshop"
password = "secret"
dbname = "workshop_service"
sslmode = "disable"

[logs]
level = "info"

[schedule]
slot_step_minutes = 60

[[schedule.weekday_shifts]]
start_hour = 9
end_hour = 13

[[schedule.weekday_shifts]]
start_hour = 16
end_hour = 20

[[schedule.saturday_shifts]]
start_hour = 9
end_hour = 14

[[services]]
id = 1
name = "Oil change"
price = 180.0

[[services]]
id = 3
name = "Full engine diagnostics"
price = 540.0
slot_count = 3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 60, cfg.Schedule.SlotStepMinutes)
	assert.Len(t, cfg.Schedule.WeekdayShifts, 2)
	assert.Len(t, cfg.Schedule.SaturdayShifts, 1)

	// Дефолты подставлены
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=workshop password=secret dbname=workshop_service sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_ServiceCatalog(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	services := cfg.ServiceCatalog()
	require.Len(t, services, 2)

	// Отсутствующий slot_count означает короткую услугу
	assert.Equal(t, 1, services[0].SlotCount)
	assert.Equal(t, 3, services[1].SlotCount)
}

func TestLoad_OverlappingShifts(t *testing.T) {
	content := `
[schedule]
slot_step_minutes = 60

[[schedule.weekday_shifts]]
start_hour = 9
end_hour = 14

[[schedule.weekday_shifts]]
start_hour = 13
end_hour = 18
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_InvalidSlotStep(t *testing.T) {
	content := `
[schedule]
slot_step_minutes = 45

[[schedule.weekday_shifts]]
start_hour = 9
end_hour = 13
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_DuplicateServiceID(t *testing.T) {
	content := validConfig + `
[[services]]
id = 1
name = "Duplicate"
price = 100.0
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
