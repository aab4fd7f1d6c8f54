package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SensorType string

const (
	SensorDoorTracking SensorType = "door-tracking"
	SensorOdor         SensorType = "odor"
	SensorHumidity     SensorType = "humidity"
	SensorBinLevel     SensorType = "bin-level"
	SensorTemperature  SensorType = "temperature"
	SensorAirQuality   SensorType = "air-quality"
)

type SensorStatus string

const (
	SensorNormal   SensorStatus = "normal"
	SensorWarning  SensorStatus = "warning"
	SensorCritical SensorStatus = "critical"
	SensorOffline  SensorStatus = "offline"
)

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Sensor is a monitored device. Status is always derived from
// CurrentValue/Threshold, except offline which is set by the liveness sweep.
type Sensor struct {
	ID            string       `gorm:"primaryKey" json:"id"`
	Name          string       `json:"name"`
	Type          SensorType   `gorm:"type:varchar(20);check:type IN ('door-tracking','odor','humidity','bin-level','temperature','air-quality')" json:"type"`
	DeviceID      string       `gorm:"uniqueIndex" json:"device_id"`
	CurrentValue  float64      `json:"current_value"`
	Threshold     float64      `json:"threshold"`
	Unit          string       `json:"unit"`
	Status        SensorStatus `gorm:"type:varchar(10);check:status IN ('normal','warning','critical','offline')" json:"status"`
	BatteryLevel  float64      `json:"battery_level"`
	SignalLevel   float64      `json:"signal_level"`
	IsActive      bool         `gorm:"default:true" json:"is_active"`
	LastReadingAt *time.Time   `json:"last_reading_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (s *Sensor) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// SensorReading is one point of the bounded per-sensor history.
type SensorReading struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SensorID  string    `gorm:"index" json:"sensor_id"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type AlertType string

const (
	AlertThreshold AlertType = "threshold"
	AlertBattery   AlertType = "battery"
	AlertOffline   AlertType = "offline"
)

// SensorAlert is append-only: alerts are acknowledged, never deleted.
type SensorAlert struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	SensorID       string        `gorm:"index" json:"sensor_id"`
	Type           AlertType     `gorm:"type:varchar(20);check:type IN ('threshold','battery','offline')" json:"type"`
	Message        string        `json:"message"`
	Severity       AlertSeverity `gorm:"type:varchar(10);check:severity IN ('info','warning','critical')" json:"severity"`
	Acknowledged   bool          `gorm:"default:false" json:"acknowledged"`
	AcknowledgedBy string        `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at,omitempty"`
	Timestamp      time.Time     `json:"timestamp"`
}

// MaintenanceRecord is an append-only service log entry for a sensor.
// It carries no derived effect on status.
type MaintenanceRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SensorID    string    `gorm:"index" json:"sensor_id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	PerformedBy string    `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}
