package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFacilityDBType string = "FACILITY_DB_TYPE"
	EnvKeyFacilityDbPath string = "FACILITY_DB_PATH"

	EnvKeyFacilityHttpHostPort string = "FACILITY_HTTP_HOST_PORT"

	EnvKeyFacilityJwtSecret string = "FACILITY_JWT_SECRET"

	EnvKeyFacilityRedisAddr    string = "FACILITY_REDIS_ADDR"
	EnvKeyFacilityEventChannel string = "FACILITY_EVENT_CHANNEL"

	EnvKeyFacilityDefaultRate  string = "FACILITY_DEFAULT_RATE"
	EnvKeyFacilityDefaultBurst string = "FACILITY_DEFAULT_BURST"

	EnvKeyFacilityOfflineAfterMinutes string = "FACILITY_OFFLINE_AFTER_MINUTES"

	LoggerNameFacilityCore  string = "facility_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameEvents        string = "events"

	LoggerFieldCategory       string = "category"
	LoggerCategoryComplaint   string = "complaint"
	LoggerCategoryFeedback    string = "feedback"
	LoggerCategorySensor      string = "sensor"
	LoggerCategoryUser        string = "user"
	LoggerCategoryMaintenance string = "maintenance"
)
