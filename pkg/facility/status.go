package facility

import (
	"facilityhub.dev/facility-service/pkg/models"
)

const (
	warningRatio  = 1.0
	criticalRatio = 1.5

	// ReadingHistoryCap bounds the per-sensor history; the oldest readings
	// are evicted once the cap is exceeded.
	ReadingHistoryCap = 1000
)

// DeriveStatus is the single derivation point for a sensor's status: the
// ratio of current value to threshold classifies it as normal (< 1.0),
// warning (>= 1.0) or critical (>= 1.5). Offline is never produced here;
// only the liveness sweep sets it. Both the write path and any read-side
// display must go through this function.
//
// Note the seed dataset shipped with the original dashboard showed a
// bin-level sensor at 85/80 as critical; the ratio 1.0625 classifies it as
// warning, and this rule is authoritative.
func DeriveStatus(current, threshold float64) models.SensorStatus {
	if threshold <= 0 {
		return models.SensorNormal
	}
	ratio := current / threshold
	switch {
	case ratio >= criticalRatio:
		return models.SensorCritical
	case ratio >= warningRatio:
		return models.SensorWarning
	default:
		return models.SensorNormal
	}
}

// HealthScore is a display-only composite of status, battery and signal
// quality, floored at 0. It is recomputed on read and never persisted.
func HealthScore(status models.SensorStatus, battery, signal float64) int {
	score := 100

	switch status {
	case models.SensorCritical:
		score -= 40
	case models.SensorWarning:
		score -= 20
	case models.SensorOffline:
		score -= 60
	}

	switch {
	case battery < 20:
		score -= 30
	case battery < 50:
		score -= 15
	}

	switch {
	case signal < 30:
		score -= 20
	case signal < 60:
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	return score
}

// severityFor maps a derived status to the severity of the alert appended
// when the status degrades.
func severityFor(status models.SensorStatus) models.AlertSeverity {
	if status == models.SensorCritical {
		return models.SeverityCritical
	}
	return models.SeverityWarning
}
