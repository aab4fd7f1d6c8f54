package facility

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"facilityhub.dev/facility-service/pkg/common"
	"facilityhub.dev/facility-service/pkg/events"
	"facilityhub.dev/facility-service/pkg/models"
)

func sensorLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFacilityCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySensor),
	)
}

func validSensorType(t models.SensorType) bool {
	switch t {
	case models.SensorDoorTracking, models.SensorOdor, models.SensorHumidity,
		models.SensorBinLevel, models.SensorTemperature, models.SensorAirQuality:
		return true
	}
	return false
}

func (f *Facility) findSensor(id string) (*models.Sensor, error) {
	var s models.Sensor
	if err := f.Db.Conn.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("sensor", id)
		}
		return nil, err
	}
	return &s, nil
}

func (f *Facility) findSensorByDeviceID(deviceID string) (*models.Sensor, error) {
	var s models.Sensor
	if err := f.Db.Conn.First(&s, "device_id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("sensor", deviceID)
		}
		return nil, err
	}
	return &s, nil
}

func (f *Facility) createSensor(input SensorInput) (*models.Sensor, error) {
	if input.Name == "" {
		return nil, errValidation("name", "must not be empty")
	}
	if !validSensorType(input.Type) {
		return nil, errValidation("type", "must be one of door-tracking, odor, humidity, bin-level, temperature, air-quality")
	}
	if input.DeviceID == "" {
		return nil, errValidation("device_id", "must not be empty")
	}
	if input.Threshold <= 0 {
		return nil, errValidation("threshold", "must be positive")
	}

	var existing int64
	if err := f.Db.Conn.Model(&models.Sensor{}).
		Where("device_id = ?", input.DeviceID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, errValidation("device_id", "already registered")
	}

	s := models.Sensor{
		Name:         input.Name,
		Type:         input.Type,
		DeviceID:     input.DeviceID,
		Threshold:    input.Threshold,
		Unit:         input.Unit,
		Status:       models.SensorNormal,
		BatteryLevel: input.BatteryLevel,
		SignalLevel:  input.SignalLevel,
		IsActive:     true,
	}
	if err := f.Db.Conn.Create(&s).Error; err != nil {
		return nil, err
	}

	sensorLogger().Info("Sensor registered", zap.String("id", s.ID), zap.String("device_id", s.DeviceID))
	return &s, nil
}

// addReading appends a history point, trims the history to the cap, and
// re-derives the status. A reading on an offline sensor brings it back to a
// ratio-derived status; a reading on a deactivated sensor is rejected.
func (f *Facility) addReading(deviceID string, value float64, at time.Time) (*models.Sensor, error) {
	logger := sensorLogger()

	s, err := f.findSensorByDeviceID(deviceID)
	if err != nil {
		return nil, err
	}
	if !s.IsActive {
		return nil, errState("add reading", "deactivated", "sensor active")
	}

	if at.IsZero() {
		at = time.Now()
	}

	reading := models.SensorReading{
		SensorID:  s.ID,
		Value:     value,
		Timestamp: at,
	}
	if err := f.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	if err := f.trimReadings(s.ID); err != nil {
		return nil, err
	}

	prev := s.Status
	s.CurrentValue = value
	s.LastReadingAt = &at
	s.Status = DeriveStatus(s.CurrentValue, s.Threshold)

	if err := f.Db.Conn.Save(s).Error; err != nil {
		return nil, err
	}

	logger.Info("Reading recorded",
		zap.String("device_id", deviceID),
		zap.Float64("value", value),
		zap.String("status", string(s.Status)))
	f.Events.Publish(events.TypeSensorReading, s)

	// alert only when the derived status degrades, not on every reading
	if s.Status != prev && (s.Status == models.SensorWarning || s.Status == models.SensorCritical) {
		alert := models.SensorAlert{
			SensorID:  s.ID,
			Type:      models.AlertThreshold,
			Severity:  severityFor(s.Status),
			Message:   fmt.Sprintf("Reading %.2f against threshold %.2f", value, s.Threshold),
			Timestamp: at,
		}
		if err := f.Db.Conn.Create(&alert).Error; err != nil {
			return nil, err
		}
		logger.Info("Alert saved", zap.Reflect("alert", alert))
		f.Events.Publish(events.TypeSensorAlert, &alert)
	}

	return s, nil
}

// trimReadings enforces the sliding window: once the history exceeds the
// cap, the oldest rows are deleted until exactly the cap remain.
func (f *Facility) trimReadings(sensorID string) error {
	var count int64
	if err := f.Db.Conn.Model(&models.SensorReading{}).
		Where("sensor_id = ?", sensorID).
		Count(&count).Error; err != nil {
		return err
	}
	if count <= ReadingHistoryCap {
		return nil
	}

	excess := count - ReadingHistoryCap
	var oldest []uint
	if err := f.Db.Conn.Model(&models.SensorReading{}).
		Where("sensor_id = ?", sensorID).
		Order("timestamp asc, id asc").
		Limit(int(excess)).
		Pluck("id", &oldest).Error; err != nil {
		return err
	}
	return f.Db.Conn.Delete(&models.SensorReading{}, oldest).Error
}

func (f *Facility) sensorReadings(sensorID string) ([]models.SensorReading, error) {
	if _, err := f.findSensor(sensorID); err != nil {
		return nil, err
	}
	var readings []models.SensorReading
	err := f.Db.Conn.
		Where("sensor_id = ?", sensorID).
		Order("timestamp asc, id asc").
		Find(&readings).Error
	return readings, err
}

func (f *Facility) sensorAlerts(sensorID string) ([]models.SensorAlert, error) {
	if _, err := f.findSensor(sensorID); err != nil {
		return nil, err
	}
	var alerts []models.SensorAlert
	err := f.Db.Conn.
		Where("sensor_id = ?", sensorID).
		Order("timestamp desc").
		Find(&alerts).Error
	return alerts, err
}

func (f *Facility) acknowledgeAlert(admin *models.User, sensorID string, alertID uint) (*models.SensorAlert, error) {
	var alert models.SensorAlert
	if err := f.Db.Conn.First(&alert, "id = ? AND sensor_id = ?", alertID, sensorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("alert", fmt.Sprintf("%d", alertID))
		}
		return nil, err
	}
	if alert.Acknowledged {
		return nil, errState("acknowledge", "acknowledged", "alert unacknowledged")
	}

	now := time.Now()
	alert.Acknowledged = true
	alert.AcknowledgedBy = admin.ID
	alert.AcknowledgedAt = &now

	if err := f.Db.Conn.Save(&alert).Error; err != nil {
		return nil, err
	}

	sensorLogger().Info("Alert acknowledged",
		zap.Uint("alert_id", alert.ID),
		zap.String("sensor_id", sensorID),
		zap.String("admin", admin.ID))
	return &alert, nil
}

func (f *Facility) addMaintenance(sensorID string, input MaintenanceInput) (*models.MaintenanceRecord, error) {
	s, err := f.findSensor(sensorID)
	if err != nil {
		return nil, err
	}
	if !s.IsActive {
		return nil, errState("add maintenance", "deactivated", "sensor active")
	}
	if input.Type == "" {
		return nil, errValidation("type", "must not be empty")
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	rec := models.MaintenanceRecord{
		SensorID:    s.ID,
		Date:        input.Date,
		Type:        input.Type,
		Description: input.Description,
		PerformedBy: input.PerformedBy,
	}
	if err := f.Db.Conn.Create(&rec).Error; err != nil {
		return nil, err
	}

	common.GetLoggerWith(
		common.LoggerNameFacilityCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMaintenance),
	).Info("Maintenance recorded", zap.String("sensor_id", s.ID), zap.String("type", rec.Type))

	return &rec, nil
}

func (f *Facility) setSensorActive(sensorID string, active bool) error {
	s, err := f.findSensor(sensorID)
	if err != nil {
		return err
	}
	s.IsActive = active
	if err := f.Db.Conn.Save(s).Error; err != nil {
		return err
	}
	sensorLogger().Info("Sensor active flag changed", zap.String("id", s.ID), zap.Bool("active", active))
	return nil
}

// sweepOffline marks sensors that have gone quiet. This is the only writer
// of the offline status; the ratio rule never produces it.
func (f *Facility) sweepOffline(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	var stale []models.Sensor
	if err := f.Db.Conn.
		Where("is_active = ?", true).
		Where("status <> ?", models.SensorOffline).
		Where("last_reading_at IS NULL OR last_reading_at < ?", cutoff).
		Find(&stale).Error; err != nil {
		return 0, err
	}

	for i := range stale {
		s := &stale[i]
		s.Status = models.SensorOffline
		if err := f.Db.Conn.Save(s).Error; err != nil {
			return int64(i), err
		}

		alert := models.SensorAlert{
			SensorID:  s.ID,
			Type:      models.AlertOffline,
			Severity:  models.SeverityWarning,
			Message:   fmt.Sprintf("No reading since %s", cutoff.Format(time.RFC3339)),
			Timestamp: time.Now(),
		}
		if err := f.Db.Conn.Create(&alert).Error; err != nil {
			return int64(i), err
		}

		f.Events.Publish(events.TypeSensorOffline, s)
	}

	if len(stale) > 0 {
		sensorLogger().Info("Offline sweep completed", zap.Int("marked", len(stale)))
	}
	return int64(len(stale)), nil
}

func (f *Facility) listSensors() ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := f.Db.Conn.Order("name asc").Find(&sensors).Error
	return sensors, err
}

type ISensorImpl struct {
	facility *Facility
}

func (is *ISensorImpl) Create(input SensorInput) (*models.Sensor, error) {
	return is.facility.createSensor(input)
}

func (is *ISensorImpl) Get(id string) (*models.Sensor, error) {
	return is.facility.findSensor(id)
}

func (is *ISensorImpl) List() ([]models.Sensor, error) {
	return is.facility.listSensors()
}

func (is *ISensorImpl) AddReading(deviceID string, value float64, at time.Time) (*models.Sensor, error) {
	return is.facility.addReading(deviceID, value, at)
}

func (is *ISensorImpl) Readings(sensorID string) ([]models.SensorReading, error) {
	return is.facility.sensorReadings(sensorID)
}

func (is *ISensorImpl) Alerts(sensorID string) ([]models.SensorAlert, error) {
	return is.facility.sensorAlerts(sensorID)
}

func (is *ISensorImpl) AcknowledgeAlert(admin *models.User, sensorID string, alertID uint) (*models.SensorAlert, error) {
	return is.facility.acknowledgeAlert(admin, sensorID, alertID)
}

func (is *ISensorImpl) AddMaintenance(sensorID string, input MaintenanceInput) (*models.MaintenanceRecord, error) {
	return is.facility.addMaintenance(sensorID, input)
}

func (is *ISensorImpl) SetActive(sensorID string, active bool) error {
	return is.facility.setSensorActive(sensorID, active)
}

func (is *ISensorImpl) SweepOffline(olderThan time.Duration) (int64, error) {
	return is.facility.sweepOffline(olderThan)
}

func (f *Facility) GetISensor() ISensor {
	return &ISensorImpl{facility: f}
}
