package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"facilityhub.dev/facility-service/pkg/common"
	"facilityhub.dev/facility-service/pkg/facility"
	"facilityhub.dev/facility-service/pkg/models"
)

// sensorResponse decorates a sensor with its display-only health score,
// recomputed on every read.
type sensorResponse struct {
	models.Sensor
	HealthScore int `json:"health_score"`
}

func toSensorResponse(s models.Sensor) sensorResponse {
	return sensorResponse{
		Sensor:      s,
		HealthScore: facility.HealthScore(s.Status, s.BatteryLevel, s.SignalLevel),
	}
}

type SensorRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	DeviceID     string  `json:"device_id"`
	Threshold    float64 `json:"threshold"`
	Unit         string  `json:"unit"`
	BatteryLevel float64 `json:"battery_level"`
	SignalLevel  float64 `json:"signal_level"`
}

var sensorRequestSchema = z.Struct(z.Shape{
	"Name":         z.String().Min(1).Max(100).Required(),
	"Type":         z.String().OneOf([]string{"door-tracking", "odor", "humidity", "bin-level", "temperature", "air-quality"}).Required(),
	"DeviceID":     z.String().Min(1).Required(),
	"Threshold":    z.Float64().Required(),
	"Unit":         z.String().Max(20),
	"BatteryLevel": z.Float64(),
	"SignalLevel":  z.Float64(),
})

func (rs *RestfulServer) CreateSensor(c *gin.Context) {
	var req SensorRequest
	if err := sensorRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	sensor, err := rs.Facility.Sensor.Create(facility.SensorInput{
		Name:         req.Name,
		Type:         models.SensorType(req.Type),
		DeviceID:     req.DeviceID,
		Threshold:    req.Threshold,
		Unit:         req.Unit,
		BatteryLevel: req.BatteryLevel,
		SignalLevel:  req.SignalLevel,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSensorResponse(*sensor))
}

func (rs *RestfulServer) ListSensors(c *gin.Context) {
	sensors, err := rs.Facility.Sensor.List()
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(sensors, toSensorResponse))
}

func (rs *RestfulServer) GetSensor(c *gin.Context) {
	sensor, err := rs.Facility.Sensor.Get(c.Param("sensor_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSensorResponse(*sensor))
}

type ReadingRequest struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"Value":     z.Float64().Required(),
	"Timestamp": z.Time(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	sensor, err := rs.Facility.Sensor.AddReading(deviceID, req.Value, req.Timestamp)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSensorResponse(*sensor))
}

func (rs *RestfulServer) GetSensorReadings(c *gin.Context) {
	readings, err := rs.Facility.Sensor.Readings(c.Param("sensor_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (rs *RestfulServer) GetSensorAlerts(c *gin.Context) {
	alerts, err := rs.Facility.Sensor.Alerts(c.Param("sensor_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_id must be an integer"})
		return
	}

	alert, err := rs.Facility.Sensor.AcknowledgeAlert(currentUser(c), c.Param("sensor_id"), uint(alertID))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

type MaintenanceRequest struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
}

var maintenanceRequestSchema = z.Struct(z.Shape{
	"Date":        z.Time(),
	"Type":        z.String().Min(1).Max(50).Required(),
	"Description": z.String().Max(500),
})

func (rs *RestfulServer) AddMaintenance(c *gin.Context) {
	var req MaintenanceRequest
	if err := maintenanceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rec, err := rs.Facility.Sensor.AddMaintenance(c.Param("sensor_id"), facility.MaintenanceInput{
		Date:        req.Date,
		Type:        req.Type,
		Description: req.Description,
		PerformedBy: currentUser(c).ID,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (rs *RestfulServer) ActivateSensor(c *gin.Context) {
	if err := rs.Facility.Sensor.SetActive(c.Param("sensor_id"), true); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) DeactivateSensor(c *gin.Context) {
	if err := rs.Facility.Sensor.SetActive(c.Param("sensor_id"), false); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type SweepRequest struct {
	OlderThanMinutes int `json:"older_than_minutes"`
}

var sweepRequestSchema = z.Struct(z.Shape{
	"OlderThanMinutes": z.Int().GTE(1).Required(),
})

func (rs *RestfulServer) SweepOffline(c *gin.Context) {
	var req SweepRequest
	if err := sweepRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	marked, err := rs.Facility.Sensor.SweepOffline(time.Duration(req.OlderThanMinutes) * time.Minute)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked_offline": marked})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
