package facility_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"facilityhub.dev/facility-service/pkg/db"
	"facilityhub.dev/facility-service/pkg/facility"
	"facilityhub.dev/facility-service/pkg/facility/mocks"
	"facilityhub.dev/facility-service/pkg/models"
)

func GetMockFacilityWithMemorySqliteDialector(t *testing.T, useMockComplaint, useMockFeedback, useMockSensor, useMockUser bool) (
	*gomock.Controller,
	*facility.Facility,
	*mocks.MockIComplaint,
	*mocks.MockIFeedback,
	*mocks.MockISensor,
	*mocks.MockIUser,
) {
	ctrl := gomock.NewController(t)

	mockIComplaint := mocks.NewMockIComplaint(ctrl)
	mockIFeedback := mocks.NewMockIFeedback(ctrl)
	mockISensor := mocks.NewMockISensor(ctrl)
	mockIUser := mocks.NewMockIUser(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	facilityInstance := &facility.Facility{Db: *dbInstance}

	complaintService := facilityInstance.GetIComplaint()
	if useMockComplaint {
		complaintService = mockIComplaint
	}

	feedbackService := facilityInstance.GetIFeedback()
	if useMockFeedback {
		feedbackService = mockIFeedback
	}

	sensorService := facilityInstance.GetISensor()
	if useMockSensor {
		sensorService = mockISensor
	}

	userService := facilityInstance.GetIUser()
	if useMockUser {
		userService = mockIUser
	}

	facilityInstance.WithServices(facility.ServiceOpts{
		Complaint: complaintService,
		Feedback:  feedbackService,
		Sensor:    sensorService,
		User:      userService,
	})

	return ctrl, facilityInstance, mockIComplaint, mockIFeedback, mockISensor, mockIUser
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func seedUser(t *testing.T, f *facility.Facility, role models.Role) *models.User {
	t.Helper()

	u := models.User{
		Email:        "user-" + uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	if err := f.Db.Conn.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &u
}

func seedComplaint(t *testing.T, f *facility.Facility, owner *models.User) *models.Complaint {
	t.Helper()

	c, err := f.Complaint.Create(owner, facility.ComplaintInput{
		Title:       "Broken elevator",
		Description: "The west wing elevator is stuck between floors.",
		Category:    models.CategoryMaintenance,
	})
	if err != nil {
		t.Fatalf("failed to seed complaint: %v", err)
	}
	return c
}
