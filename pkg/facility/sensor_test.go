package facility_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"facilityhub.dev/facility-service/pkg/common"
	"facilityhub.dev/facility-service/pkg/facility"
	"facilityhub.dev/facility-service/pkg/models"
	_ "facilityhub.dev/facility-service/pkg/testing"
)

func seedSensor(t *testing.T, f *facility.Facility, threshold float64) *models.Sensor {
	t.Helper()

	s, err := f.Sensor.Create(facility.SensorInput{
		Name:         "bin-" + uuid.NewString()[:8],
		Type:         models.SensorBinLevel,
		DeviceID:     uuid.NewString(),
		Threshold:    threshold,
		Unit:         "%",
		BatteryLevel: 100,
		SignalLevel:  100,
	})
	require.NoError(t, err)
	return s
}

func TestCreateSensor(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	s := seedSensor(t, f, 80)
	assert.Equal(t, models.SensorNormal, s.Status)
	assert.True(t, s.IsActive)

	// duplicate device id is rejected
	var validationErr *facility.ValidationError
	_, err := f.Sensor.Create(facility.SensorInput{
		Name:      "dupe",
		Type:      models.SensorBinLevel,
		DeviceID:  s.DeviceID,
		Threshold: 80,
	})
	require.ErrorAs(t, err, &validationErr)
}

func TestAddReadingDerivesStatus(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	s := seedSensor(t, f, 80)

	updated, err := f.Sensor.AddReading(s.DeviceID, 50, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.SensorNormal, updated.Status)
	assert.Equal(t, 50.0, updated.CurrentValue)
	assert.NotNil(t, updated.LastReadingAt)

	updated, err = f.Sensor.AddReading(s.DeviceID, 85, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.SensorWarning, updated.Status)

	updated, err = f.Sensor.AddReading(s.DeviceID, 120, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.SensorCritical, updated.Status)
}

func TestAddReadingAppendsAlertOnDegrade(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	s := seedSensor(t, f, 80)

	// two warning readings in a row produce a single alert
	_, err := f.Sensor.AddReading(s.DeviceID, 85, time.Now())
	require.NoError(t, err)
	_, err = f.Sensor.AddReading(s.DeviceID, 90, time.Now())
	require.NoError(t, err)

	alerts, err := f.Sensor.Alerts(s.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertThreshold, alerts[0].Type)
	assert.Equal(t, models.SeverityWarning, alerts[0].Severity)
	assert.False(t, alerts[0].Acknowledged)

	// degrading further to critical appends a second alert
	_, err = f.Sensor.AddReading(s.DeviceID, 130, time.Now())
	require.NoError(t, err)

	alerts, err = f.Sensor.Alerts(s.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestAddReadingWithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	s := seedSensor(t, f, 80)

	_, err := f.Sensor.AddReading(s.DeviceID, 130, time.Now())
	require.NoError(t, err)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "sensor" &&
			lobj["logger"] == "facility_core" &&
			lobj["msg"] == "Alert saved" &&
			lobj["alert"].(map[string]any)["sensor_id"] == s.ID &&
			lobj["alert"].(map[string]any)["severity"] == "critical" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAddReadingInactiveSensorRejected(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	s := seedSensor(t, f, 80)
	require.NoError(t, f.Sensor.SetActive(s.ID, false))

	var stateErr *facility.StateError
	_, err := f.Sensor.AddReading(s.DeviceID, 50, time.Now())
	require.ErrorAs(t, err, &stateErr)
}

func TestReadingHistoryCap(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	s := seedSensor(t, f, 1e9) // threshold high enough to never alert

	base := time.Now().Add(-time.Duration(facility.ReadingHistoryCap+1) * time.Second)
	for i := 0; i < facility.ReadingHistoryCap+1; i++ {
		_, err := f.Sensor.AddReading(s.DeviceID, float64(i), base.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	readings, err := f.Sensor.Readings(s.ID)
	require.NoError(t, err)
	require.Len(t, readings, facility.ReadingHistoryCap)

	// exactly the oldest point was evicted
	assert.Equal(t, 1.0, readings[0].Value)
	assert.Equal(t, float64(facility.ReadingHistoryCap), readings[len(readings)-1].Value)
}

func TestAcknowledgeAlert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	admin := seedUser(t, f, models.RoleAdmin)
	s := seedSensor(t, f, 80)

	_, err := f.Sensor.AddReading(s.DeviceID, 130, time.Now())
	require.NoError(t, err)

	alerts, err := f.Sensor.Alerts(s.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	acked, err := f.Sensor.AcknowledgeAlert(admin, s.ID, alerts[0].ID)
	require.NoError(t, err)
	assert.True(t, acked.Acknowledged)
	assert.Equal(t, admin.ID, acked.AcknowledgedBy)
	assert.NotNil(t, acked.AcknowledgedAt)

	// acknowledging twice fails, the alert itself is never deleted
	var stateErr *facility.StateError
	_, err = f.Sensor.AcknowledgeAlert(admin, s.ID, alerts[0].ID)
	require.ErrorAs(t, err, &stateErr)

	alerts, err = f.Sensor.Alerts(s.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestSweepOffline(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	stale := seedSensor(t, f, 80)
	fresh := seedSensor(t, f, 80)

	old := time.Now().Add(-2 * time.Hour)
	_, err := f.Sensor.AddReading(stale.DeviceID, 50, old)
	require.NoError(t, err)
	_, err = f.Sensor.AddReading(fresh.DeviceID, 50, time.Now())
	require.NoError(t, err)

	marked, err := f.Sensor.SweepOffline(time.Hour)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, marked, int64(1))

	reloaded, err := f.Sensor.Get(stale.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SensorOffline, reloaded.Status)

	freshReloaded, err := f.Sensor.Get(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SensorNormal, freshReloaded.Status)

	// a new reading brings the sensor back to a ratio-derived status
	back, err := f.Sensor.AddReading(stale.DeviceID, 50, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.SensorNormal, back.Status)
}

func TestAddMaintenance(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	admin := seedUser(t, f, models.RoleAdmin)
	s := seedSensor(t, f, 80)

	rec, err := f.Sensor.AddMaintenance(s.ID, facility.MaintenanceInput{
		Type:        "battery-swap",
		Description: "replaced 2xAA",
		PerformedBy: admin.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, s.ID, rec.SensorID)
	assert.False(t, rec.Date.IsZero())

	// maintenance has no derived effect on status
	reloaded, err := f.Sensor.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SensorNormal, reloaded.Status)

	require.NoError(t, f.Sensor.SetActive(s.ID, false))

	var stateErr *facility.StateError
	_, err = f.Sensor.AddMaintenance(s.ID, facility.MaintenanceInput{Type: "clean"})
	require.ErrorAs(t, err, &stateErr)
}
