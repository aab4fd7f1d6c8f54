package facility_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facilityhub.dev/facility-service/pkg/common"
	"facilityhub.dev/facility-service/pkg/facility"
	"facilityhub.dev/facility-service/pkg/models"
	_ "facilityhub.dev/facility-service/pkg/testing"
)

func TestCreateComplaintDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)

	c, err := f.Complaint.Create(owner, facility.ComplaintInput{
		Title:       "Foul smell in stairwell",
		Description: "Strong odor near the third floor landing.",
		Category:    models.CategoryCleanliness,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintPending, c.Status)
	assert.Equal(t, models.PriorityMedium, c.Priority)
	assert.Equal(t, 0, c.EscalationLevel)
	assert.False(t, c.IsUrgent)
	assert.Equal(t, owner.ID, c.UserID)
	assert.Nil(t, c.ResolvedAt)
}

func TestCreateComplaintValidation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)

	var validationErr *facility.ValidationError

	_, err := f.Complaint.Create(owner, facility.ComplaintInput{
		Title:       "",
		Description: "desc",
		Category:    models.CategoryOther,
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)

	_, err = f.Complaint.Create(owner, facility.ComplaintInput{
		Title:       "t",
		Description: "desc",
		Category:    "plumbing",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "category", validationErr.Field)
}

func TestResolveComplaintOnce(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)
	c := seedComplaint(t, f, owner)

	resolved, err := f.Complaint.Resolve(admin, c.ID, "replaced the motor")
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	firstResolvedAt := *resolved.ResolvedAt
	require.NotNil(t, resolved.AssigneeID)
	assert.Equal(t, admin.ID, *resolved.AssigneeID)

	// second resolve fails with a state error and the timestamp stays put
	var stateErr *facility.StateError
	_, err = f.Complaint.Resolve(admin, c.ID, "")
	require.ErrorAs(t, err, &stateErr)

	reloaded, err := f.Complaint.Get(admin, c.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ResolvedAt)
	assert.Equal(t, firstResolvedAt.Unix(), reloaded.ResolvedAt.Unix())
}

func TestResolveClosedComplaintFails(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)
	c := seedComplaint(t, f, owner)

	_, err := f.Complaint.Close(admin, c.ID)
	require.NoError(t, err)

	var stateErr *facility.StateError
	_, err = f.Complaint.Resolve(admin, c.ID, "")
	require.ErrorAs(t, err, &stateErr)
}

func TestRecordResponseLeavesStatusAlone(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)
	c := seedComplaint(t, f, owner)

	responded, err := f.Complaint.RecordResponse(admin, c.ID, "A technician is on the way.")
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintPending, responded.Status)
	assert.Equal(t, "A technician is on the way.", responded.ResponseMessage)
	assert.Equal(t, admin.ID, responded.ResponseBy)
	assert.NotNil(t, responded.ResponseAt)
}

func TestEscalateComplaint(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)
	c := seedComplaint(t, f, owner)

	c1, err := f.Complaint.Escalate(admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c1.EscalationLevel)
	assert.False(t, c1.IsUrgent)

	c2, err := f.Complaint.Escalate(admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, c2.EscalationLevel)
	assert.True(t, c2.IsUrgent)

	// capped at 3
	f.Complaint.Escalate(admin, c.ID)
	c4, err := f.Complaint.Escalate(admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, c4.EscalationLevel)

	// escalating a terminal complaint fails
	_, err = f.Complaint.Resolve(admin, c.ID, "")
	require.NoError(t, err)

	var stateErr *facility.StateError
	_, err = f.Complaint.Escalate(admin, c.ID)
	require.ErrorAs(t, err, &stateErr)
}

func TestAutoEscalationOnSave(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)

	c, err := f.Complaint.Create(owner, facility.ComplaintInput{
		Title:       "Water leaking through ceiling",
		Description: "Visible water damage and dripping in unit 4B.",
		Category:    models.CategoryMaintenance,
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)

	// age the complaint to 14 days
	aged := time.Now().AddDate(0, 0, -14)
	require.NoError(t, f.Db.Conn.Model(&models.Complaint{}).
		Where("id = ?", c.ID).
		Update("created_at", aged).Error)

	// any save while pending re-runs the policy
	updated, err := f.Complaint.RecordResponse(admin, c.ID, "Looking into it.")
	require.NoError(t, err)

	assert.Equal(t, 2, updated.EscalationLevel)
	assert.True(t, updated.IsUrgent)
}

func TestAutoEscalationNeverLowers(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)

	c, err := f.Complaint.Create(owner, facility.ComplaintInput{
		Title:       "Door lock jammed",
		Description: "Main entrance lock does not engage.",
		Category:    models.CategorySecurity,
		Priority:    models.PriorityHigh,
	})
	require.NoError(t, err)

	// manually escalate past what age would derive
	f.Complaint.Escalate(admin, c.ID)
	f.Complaint.Escalate(admin, c.ID)
	c3, err := f.Complaint.Escalate(admin, c.ID)
	require.NoError(t, err)
	require.Equal(t, 3, c3.EscalationLevel)

	aged := time.Now().AddDate(0, 0, -14)
	require.NoError(t, f.Db.Conn.Model(&models.Complaint{}).
		Where("id = ?", c.ID).
		Update("created_at", aged).Error)

	// age derives level 2; the stored level 3 must survive the save
	updated, err := f.Complaint.RecordResponse(admin, c.ID, "noted")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.EscalationLevel)
}

func TestUpdateComplaintStateGate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)
	c := seedComplaint(t, f, owner)

	newTitle := "Broken elevator (west wing)"
	updated, err := f.Complaint.Update(owner, c.ID, facility.ComplaintUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	_, err = f.Complaint.Resolve(admin, c.ID, "")
	require.NoError(t, err)

	var stateErr *facility.StateError
	_, err = f.Complaint.Update(owner, c.ID, facility.ComplaintUpdate{Title: &newTitle})
	require.ErrorAs(t, err, &stateErr)
}

func TestUpdateComplaintOwnership(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	stranger := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)
	c := seedComplaint(t, f, owner)

	newTitle := "hijacked"
	var authzErr *facility.AuthzError
	_, err := f.Complaint.Update(stranger, c.ID, facility.ComplaintUpdate{Title: &newTitle})
	require.ErrorAs(t, err, &authzErr)

	// admin override is allowed
	_, err = f.Complaint.Update(admin, c.ID, facility.ComplaintUpdate{Title: &newTitle})
	require.NoError(t, err)
}

func TestDeleteComplaintOnlyWhilePending(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	owner := seedUser(t, f, models.RoleUser)
	admin := seedUser(t, f, models.RoleAdmin)

	pending := seedComplaint(t, f, owner)
	started := seedComplaint(t, f, owner)

	_, err := f.Complaint.Start(admin, started.ID)
	require.NoError(t, err)

	var stateErr *facility.StateError
	err = f.Complaint.Delete(owner, started.ID)
	require.ErrorAs(t, err, &stateErr)

	require.NoError(t, f.Complaint.Delete(owner, pending.ID))

	var notFoundErr *facility.NotFoundError
	_, err = f.Complaint.Get(owner, pending.ID)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestListComplaintsScopedToOwner(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _, _ := GetMockFacilityWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	alice := seedUser(t, f, models.RoleUser)
	bob := seedUser(t, f, models.RoleUser)

	seedComplaint(t, f, alice)
	seedComplaint(t, f, alice)
	seedComplaint(t, f, bob)

	complaints, total, err := f.Complaint.List(alice, facility.ComplaintFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, c := range complaints {
		assert.Equal(t, alice.ID, c.UserID)
	}
}
