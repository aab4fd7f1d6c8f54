package facility

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"facilityhub.dev/facility-service/pkg/common"
	"facilityhub.dev/facility-service/pkg/events"
	"facilityhub.dev/facility-service/pkg/models"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxResponseLen    = 500
	maxNotesLen       = 500
)

func complaintLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFacilityCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryComplaint),
	)
}

func validCategory(c models.ComplaintCategory) bool {
	switch c {
	case models.CategoryMaintenance, models.CategoryCleanliness, models.CategorySecurity, models.CategoryOther:
		return true
	}
	return false
}

func validPriority(p models.ComplaintPriority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

func (f *Facility) findComplaint(id string) (*models.Complaint, error) {
	var c models.Complaint
	if err := f.Db.Conn.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("complaint", id)
		}
		return nil, err
	}
	return &c, nil
}

// canAccessComplaint is the owner-or-admin capability check shared by the
// read and mutate paths.
func canAccessComplaint(actor *models.User, c *models.Complaint) bool {
	return actor.IsAdmin() || c.UserID == actor.ID
}

// saveComplaint re-runs the auto-escalation policy and persists. Every
// mutating write funnels through here so the escalation invariant cannot
// drift between operations.
func (f *Facility) saveComplaint(c *models.Complaint) error {
	autoEscalate(c, c.AgeDays(time.Now()))
	return f.Db.Conn.Save(c).Error
}

func (f *Facility) createComplaint(actor *models.User, input ComplaintInput) (*models.Complaint, error) {
	logger := complaintLogger()

	if l := len(input.Title); l < 1 || l > maxTitleLen {
		return nil, errValidation("title", "must be 1-200 characters")
	}
	if l := len(input.Description); l < 1 || l > maxDescriptionLen {
		return nil, errValidation("description", "must be 1-1000 characters")
	}
	if !validCategory(input.Category) {
		return nil, errValidation("category", "must be one of maintenance, cleanliness, security, other")
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !validPriority(input.Priority) {
		return nil, errValidation("priority", "must be one of low, medium, high")
	}

	c := models.Complaint{
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		Location:        input.Location,
		Priority:        input.Priority,
		Status:          models.ComplaintPending,
		EscalationLevel: 0,
		UserID:          actor.ID,
	}

	if err := f.Db.Conn.Create(&c).Error; err != nil {
		return nil, err
	}

	logger.Info("Complaint created", zap.String("id", c.ID), zap.String("user_id", actor.ID))
	f.Events.Publish(events.TypeComplaintCreated, &c)

	return &c, nil
}

func (f *Facility) getComplaint(actor *models.User, id string) (*models.Complaint, error) {
	c, err := f.findComplaint(id)
	if err != nil {
		return nil, err
	}
	if !canAccessComplaint(actor, c) {
		return nil, errAuthz("complaint belongs to another user")
	}
	return c, nil
}

func (f *Facility) listComplaints(actor *models.User, filter ComplaintFilter) ([]models.Complaint, int64, error) {
	q := f.Db.Conn.Model(&models.Complaint{})

	// non-admins only ever see their own complaints
	if !actor.IsAdmin() {
		q = q.Where("user_id = ?", actor.ID)
	} else if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	var complaints []models.Complaint
	err := q.Order("created_at desc").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&complaints).Error
	return complaints, total, err
}

func (f *Facility) recordResponse(responder *models.User, id string, message string) (*models.Complaint, error) {
	if l := len(message); l < 1 || l > maxResponseLen {
		return nil, errValidation("message", "must be 1-500 characters")
	}

	c, err := f.findComplaint(id)
	if err != nil {
		return nil, err
	}

	// responding does not itself change status; resolution is a separate act
	now := time.Now()
	c.ResponseMessage = message
	c.ResponseBy = responder.ID
	c.ResponseAt = &now

	if err := f.saveComplaint(c); err != nil {
		return nil, err
	}

	complaintLogger().Info("Admin response recorded", zap.String("id", c.ID), zap.String("responder", responder.ID))
	f.Events.Publish(events.TypeComplaintResponded, c)

	return c, nil
}

func (f *Facility) startComplaint(admin *models.User, id string) (*models.Complaint, error) {
	c, err := f.findComplaint(id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(c.Status, models.ComplaintInProgress) {
		return nil, errState("start", string(c.Status), "status pending")
	}

	c.Status = models.ComplaintInProgress
	adminID := admin.ID
	c.AssigneeID = &adminID

	if err := f.saveComplaint(c); err != nil {
		return nil, err
	}

	complaintLogger().Info("Complaint started", zap.String("id", c.ID), zap.String("assignee", admin.ID))
	f.Events.Publish(events.TypeComplaintUpdated, c)

	return c, nil
}

func (f *Facility) resolveComplaint(resolver *models.User, id string, notes string) (*models.Complaint, error) {
	if len(notes) > maxNotesLen {
		return nil, errValidation("notes", "must be at most 500 characters")
	}

	c, err := f.findComplaint(id)
	if err != nil {
		return nil, err
	}
	if c.Status == models.ComplaintResolved {
		return nil, errState("resolve", string(c.Status), "status not resolved")
	}
	if !CanTransition(c.Status, models.ComplaintResolved) {
		return nil, errState("resolve", string(c.Status), "status pending or in-progress")
	}

	now := time.Now()
	c.Status = models.ComplaintResolved
	c.ResolvedAt = &now
	c.ResolutionNotes = notes
	if c.AssigneeID == nil {
		resolverID := resolver.ID
		c.AssigneeID = &resolverID
	}

	if err := f.saveComplaint(c); err != nil {
		return nil, err
	}

	complaintLogger().Info("Complaint resolved", zap.String("id", c.ID), zap.String("resolver", resolver.ID))
	f.Events.Publish(events.TypeComplaintResolved, c)

	return c, nil
}

func (f *Facility) closeComplaint(admin *models.User, id string) (*models.Complaint, error) {
	c, err := f.findComplaint(id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(c.Status, models.ComplaintClosed) {
		return nil, errState("close", string(c.Status), "status pending or in-progress")
	}

	c.Status = models.ComplaintClosed

	if err := f.saveComplaint(c); err != nil {
		return nil, err
	}

	complaintLogger().Info("Complaint closed", zap.String("id", c.ID), zap.String("admin", admin.ID))
	f.Events.Publish(events.TypeComplaintClosed, c)

	return c, nil
}

func (f *Facility) escalateComplaint(admin *models.User, id string) (*models.Complaint, error) {
	c, err := f.findComplaint(id)
	if err != nil {
		return nil, err
	}
	if c.IsTerminal() {
		return nil, errState("escalate", string(c.Status), "status pending or in-progress")
	}

	applyEscalation(c, NextEscalation(c.EscalationLevel))

	if err := f.saveComplaint(c); err != nil {
		return nil, err
	}

	complaintLogger().Info("Complaint escalated",
		zap.String("id", c.ID),
		zap.Int("level", c.EscalationLevel),
		zap.Bool("urgent", c.IsUrgent))
	f.Events.Publish(events.TypeComplaintEscalated, c)

	return c, nil
}

func (f *Facility) updateComplaint(actor *models.User, id string, input ComplaintUpdate) (*models.Complaint, error) {
	c, err := f.findComplaint(id)
	if err != nil {
		return nil, err
	}
	if !canAccessComplaint(actor, c) {
		return nil, errAuthz("complaint belongs to another user")
	}
	if !c.IsOpen() {
		return nil, errState("update", string(c.Status), "status pending or in-progress")
	}

	if input.Title != nil {
		if l := len(*input.Title); l < 1 || l > maxTitleLen {
			return nil, errValidation("title", "must be 1-200 characters")
		}
		c.Title = *input.Title
	}
	if input.Description != nil {
		if l := len(*input.Description); l < 1 || l > maxDescriptionLen {
			return nil, errValidation("description", "must be 1-1000 characters")
		}
		c.Description = *input.Description
	}
	if input.Category != nil {
		if !validCategory(*input.Category) {
			return nil, errValidation("category", "must be one of maintenance, cleanliness, security, other")
		}
		c.Category = *input.Category
	}
	if input.Priority != nil {
		if !validPriority(*input.Priority) {
			return nil, errValidation("priority", "must be one of low, medium, high")
		}
		c.Priority = *input.Priority
	}
	if input.Location != nil {
		c.Location = *input.Location
	}

	if err := f.saveComplaint(c); err != nil {
		return nil, err
	}

	complaintLogger().Info("Complaint updated", zap.String("id", c.ID), zap.String("actor", actor.ID))
	f.Events.Publish(events.TypeComplaintUpdated, c)

	return c, nil
}

func (f *Facility) deleteComplaint(actor *models.User, id string) error {
	c, err := f.findComplaint(id)
	if err != nil {
		return err
	}
	if !canAccessComplaint(actor, c) {
		return errAuthz("complaint belongs to another user")
	}
	if c.Status != models.ComplaintPending {
		return errState("delete", string(c.Status), "status pending")
	}

	if err := f.Db.Conn.Delete(c).Error; err != nil {
		return err
	}

	complaintLogger().Info("Complaint deleted", zap.String("id", c.ID), zap.String("actor", actor.ID))
	f.Events.Publish(events.TypeComplaintDeleted, c)

	return nil
}

type IComplaintImpl struct {
	facility *Facility
}

func (ic *IComplaintImpl) Create(actor *models.User, input ComplaintInput) (*models.Complaint, error) {
	return ic.facility.createComplaint(actor, input)
}

func (ic *IComplaintImpl) Get(actor *models.User, id string) (*models.Complaint, error) {
	return ic.facility.getComplaint(actor, id)
}

func (ic *IComplaintImpl) List(actor *models.User, filter ComplaintFilter) ([]models.Complaint, int64, error) {
	return ic.facility.listComplaints(actor, filter)
}

func (ic *IComplaintImpl) RecordResponse(responder *models.User, id string, message string) (*models.Complaint, error) {
	return ic.facility.recordResponse(responder, id, message)
}

func (ic *IComplaintImpl) Start(admin *models.User, id string) (*models.Complaint, error) {
	return ic.facility.startComplaint(admin, id)
}

func (ic *IComplaintImpl) Resolve(resolver *models.User, id string, notes string) (*models.Complaint, error) {
	return ic.facility.resolveComplaint(resolver, id, notes)
}

func (ic *IComplaintImpl) Close(admin *models.User, id string) (*models.Complaint, error) {
	return ic.facility.closeComplaint(admin, id)
}

func (ic *IComplaintImpl) Escalate(admin *models.User, id string) (*models.Complaint, error) {
	return ic.facility.escalateComplaint(admin, id)
}

func (ic *IComplaintImpl) Update(actor *models.User, id string, input ComplaintUpdate) (*models.Complaint, error) {
	return ic.facility.updateComplaint(actor, id, input)
}

func (ic *IComplaintImpl) Delete(actor *models.User, id string) error {
	return ic.facility.deleteComplaint(actor, id)
}

func (f *Facility) GetIComplaint() IComplaint {
	return &IComplaintImpl{facility: f}
}
