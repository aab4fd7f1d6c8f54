package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"facilityhub.dev/facility-service/pkg/common"
	"facilityhub.dev/facility-service/pkg/db"
	"facilityhub.dev/facility-service/pkg/events"
	"facilityhub.dev/facility-service/pkg/facility"
	facilityHttp "facilityhub.dev/facility-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	facilityDbType := os.Getenv(common.EnvKeyFacilityDBType)
	switch facilityDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FACILITY_DB_TYPE: " + facilityDbType)
	}

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyFacilityJwtSecret))
	if jwtSecret == "" {
		log.Fatal("FACILITY_JWT_SECRET not set in .env")
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFacilityHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFacilityDefaultRate), 64); err != nil {
		log.Fatal("Invalid FACILITY_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFacilityDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid FACILITY_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	// redis is optional: without it change events are dropped, the REST
	// surface works the same
	var publisher *events.Publisher
	redisAddr := strings.TrimSpace(os.Getenv(common.EnvKeyFacilityRedisAddr))
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect redis at %s: %v", redisAddr, err)
		}
		publisher = events.NewPublisher(rdb, os.Getenv(common.EnvKeyFacilityEventChannel))
		logger.Info("Redis event publisher enabled", zap.String("addr", redisAddr))
	} else {
		logger.Info("No FACILITY_REDIS_ADDR set, change events disabled")
	}

	facilityCore := facility.Facility{
		Db:     *dbInstance,
		Events: publisher,
	}
	facilityCore.WithServices(facility.ServiceOpts{
		Complaint: facilityCore.GetIComplaint(),
		Feedback:  facilityCore.GetIFeedback(),
		Sensor:    facilityCore.GetISensor(),
		User:      facilityCore.GetIUser(),
	})

	// optional background liveness sweep, marks quiet sensors offline
	if sweepMinutes, err := strconv.Atoi(os.Getenv(common.EnvKeyFacilityOfflineAfterMinutes)); err == nil && sweepMinutes > 0 {
		olderThan := time.Duration(sweepMinutes) * time.Minute
		go func() {
			ticker := time.NewTicker(olderThan)
			defer ticker.Stop()
			for range ticker.C {
				marked, err := facilityCore.Sensor.SweepOffline(olderThan)
				if err != nil {
					logger.Error("Offline sweep failed", zap.Error(err))
				} else if marked > 0 {
					logger.Info("Offline sweep", zap.Int64("marked", marked))
				}
			}
		}()
		logger.Info("Offline sweep enabled", zap.Int("after_minutes", sweepMinutes))
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &facilityHttp.RestfulServer{
		Server:           gin.Default(),
		Facility:         &facilityCore,
		RateLimiterStore: facility.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
		JWTSecret:        []byte(jwtSecret),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
