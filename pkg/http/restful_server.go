package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"facilityhub.dev/facility-service/pkg/facility"
)

type RestfulServer struct {
	Server           *gin.Engine
	Facility         *facility.Facility
	RateLimiterStore *facility.RateLimiterStore
	JWTSecret        []byte
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	auth := rs.Server.Group("/auth")
	{
		auth.POST("/register", rs.Register)
		auth.POST("/login", rs.Login)
	}

	authed := rs.Server.Group("/")
	authed.Use(rs.AuthRequired())
	{
		complaints := authed.Group("/complaints")
		{
			complaints.POST("", rs.CreateComplaint)
			complaints.GET("", rs.ListComplaints)
			complaints.GET("/:id", rs.GetComplaint)
			complaints.PATCH("/:id", rs.UpdateComplaint)
			complaints.DELETE("/:id", rs.DeleteComplaint)
			complaints.POST("/:id/feedback", rs.SubmitFeedback)
			complaints.GET("/:id/feedback", rs.ListComplaintFeedback)
		}

		authed.GET("/sensors", rs.ListSensors)
		authed.GET("/sensors/:sensor_id", rs.GetSensor)
		authed.GET("/sensors/:sensor_id/readings", rs.GetSensorReadings)
		authed.GET("/sensors/:sensor_id/alerts", rs.GetSensorAlerts)

		// device-facing ingest, rate limited per device
		authed.POST("/devices/:device_id/readings", rs.PostReading)
	}

	admin := rs.Server.Group("/")
	admin.Use(rs.AuthRequired(), rs.AdminRequired())
	{
		admin.POST("/complaints/:id/response", rs.RespondComplaint)
		admin.POST("/complaints/:id/start", rs.StartComplaint)
		admin.POST("/complaints/:id/resolve", rs.ResolveComplaint)
		admin.POST("/complaints/:id/close", rs.CloseComplaint)
		admin.POST("/complaints/:id/escalate", rs.EscalateComplaint)

		admin.GET("/feedback", rs.ListAllFeedback)

		admin.POST("/users/:id/deactivate", rs.DeactivateUser)

		admin.POST("/sensors", rs.CreateSensor)
		admin.POST("/sensors/sweep-offline", rs.SweepOffline)
		admin.POST("/sensors/:sensor_id/maintenance", rs.AddMaintenance)
		admin.POST("/sensors/:sensor_id/alerts/:alert_id/ack", rs.AcknowledgeAlert)
		admin.POST("/sensors/:sensor_id/activate", rs.ActivateSensor)
		admin.POST("/sensors/:sensor_id/deactivate", rs.DeactivateSensor)

		admin.POST("/devices/:device_id/limiter", rs.PostLimiter)
	}
}
