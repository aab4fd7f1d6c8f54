package facility

import (
	"go.uber.org/zap"

	"facilityhub.dev/facility-service/pkg/common"
	"facilityhub.dev/facility-service/pkg/events"
	"facilityhub.dev/facility-service/pkg/models"
)

func feedbackLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFacilityCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFeedback),
	)
}

func (f *Facility) submitFeedback(actor *models.User, complaintID string, rating int, message string) (*models.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, errValidation("rating", "must be an integer between 1 and 5")
	}

	c, err := f.findComplaint(complaintID)
	if err != nil {
		return nil, err
	}
	if c.UserID != actor.ID {
		return nil, errAuthz("only the complaint owner may submit feedback")
	}
	if c.Status != models.ComplaintResolved {
		return nil, errState("submit feedback", string(c.Status), "status resolved")
	}

	var existing int64
	if err := f.Db.Conn.Model(&models.Feedback{}).
		Where("complaint_id = ? AND user_id = ?", complaintID, actor.ID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, errValidation("complaint_id", "feedback already submitted for this complaint")
	}

	fb := models.Feedback{
		ComplaintID: complaintID,
		UserID:      actor.ID,
		Rating:      rating,
		Message:     message,
	}
	if err := f.Db.Conn.Create(&fb).Error; err != nil {
		return nil, err
	}

	feedbackLogger().Info("Feedback submitted",
		zap.String("complaint_id", complaintID),
		zap.String("user_id", actor.ID),
		zap.Int("rating", rating))
	f.Events.Publish(events.TypeFeedbackSubmitted, &fb)

	return &fb, nil
}

func (f *Facility) listFeedbackForComplaint(actor *models.User, complaintID string) ([]models.Feedback, error) {
	c, err := f.findComplaint(complaintID)
	if err != nil {
		return nil, err
	}
	if !canAccessComplaint(actor, c) {
		return nil, errAuthz("complaint belongs to another user")
	}

	var feedback []models.Feedback
	err = f.Db.Conn.
		Where("complaint_id = ?", complaintID).
		Order("created_at desc").
		Find(&feedback).Error
	return feedback, err
}

func (f *Facility) listAllFeedback() ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := f.Db.Conn.Order("created_at desc").Find(&feedback).Error
	return feedback, err
}

type IFeedbackImpl struct {
	facility *Facility
}

func (ifb *IFeedbackImpl) Submit(actor *models.User, complaintID string, rating int, message string) (*models.Feedback, error) {
	return ifb.facility.submitFeedback(actor, complaintID, rating, message)
}

func (ifb *IFeedbackImpl) ListForComplaint(actor *models.User, complaintID string) ([]models.Feedback, error) {
	return ifb.facility.listFeedbackForComplaint(actor, complaintID)
}

func (ifb *IFeedbackImpl) ListAll() ([]models.Feedback, error) {
	return ifb.facility.listAllFeedback()
}

func (f *Facility) GetIFeedback() IFeedback {
	return &IFeedbackImpl{facility: f}
}
