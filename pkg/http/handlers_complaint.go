package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"facilityhub.dev/facility-service/pkg/facility"
	"facilityhub.dev/facility-service/pkg/models"
)

type ComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Location    string `json:"location"`
}

var complaintRequestSchema = z.Struct(z.Shape{
	"Title":       z.String().Min(1).Max(200).Required(),
	"Description": z.String().Min(1).Max(1000).Required(),
	"Category":    z.String().OneOf([]string{"maintenance", "cleanliness", "security", "other"}).Required(),
	"Priority":    z.String().OneOf([]string{"low", "medium", "high"}),
	"Location":    z.String().Max(200),
})

func (rs *RestfulServer) CreateComplaint(c *gin.Context) {
	var req ComplaintRequest
	if err := complaintRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	complaint, err := rs.Facility.Complaint.Create(currentUser(c), facility.ComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    models.ComplaintCategory(req.Category),
		Priority:    models.ComplaintPriority(req.Priority),
		Location:    req.Location,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

func (rs *RestfulServer) ListComplaints(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	complaints, total, err := rs.Facility.Complaint.List(currentUser(c), facility.ComplaintFilter{
		Status:   models.ComplaintStatus(c.Query("status")),
		Category: models.ComplaintCategory(c.Query("category")),
		Priority: models.ComplaintPriority(c.Query("priority")),
		UserID:   c.Query("user_id"),
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaints": complaints, "total": total})
}

func (rs *RestfulServer) GetComplaint(c *gin.Context) {
	complaint, err := rs.Facility.Complaint.Get(currentUser(c), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

type ComplaintUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Location    string `json:"location"`
}

var complaintUpdateRequestSchema = z.Struct(z.Shape{
	"Title":       z.String().Max(200),
	"Description": z.String().Max(1000),
	"Category":    z.String().OneOf([]string{"maintenance", "cleanliness", "security", "other"}),
	"Priority":    z.String().OneOf([]string{"low", "medium", "high"}),
	"Location":    z.String().Max(200),
})

func (rs *RestfulServer) UpdateComplaint(c *gin.Context) {
	var req ComplaintUpdateRequest
	if err := complaintUpdateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	// empty fields were not provided; title/description may not legally be
	// empty anyway
	update := facility.ComplaintUpdate{}
	if req.Title != "" {
		update.Title = &req.Title
	}
	if req.Description != "" {
		update.Description = &req.Description
	}
	if req.Category != "" {
		category := models.ComplaintCategory(req.Category)
		update.Category = &category
	}
	if req.Priority != "" {
		priority := models.ComplaintPriority(req.Priority)
		update.Priority = &priority
	}
	if req.Location != "" {
		update.Location = &req.Location
	}

	complaint, err := rs.Facility.Complaint.Update(currentUser(c), c.Param("id"), update)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

func (rs *RestfulServer) DeleteComplaint(c *gin.Context) {
	if err := rs.Facility.Complaint.Delete(currentUser(c), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type ResponseRequest struct {
	Message string `json:"message"`
}

var responseRequestSchema = z.Struct(z.Shape{
	"Message": z.String().Min(1).Max(500).Required(),
})

func (rs *RestfulServer) RespondComplaint(c *gin.Context) {
	var req ResponseRequest
	if err := responseRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	complaint, err := rs.Facility.Complaint.RecordResponse(currentUser(c), c.Param("id"), req.Message)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

func (rs *RestfulServer) StartComplaint(c *gin.Context) {
	complaint, err := rs.Facility.Complaint.Start(currentUser(c), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

type ResolveRequest struct {
	Notes string `json:"notes"`
}

var resolveRequestSchema = z.Struct(z.Shape{
	"Notes": z.String().Max(500),
})

func (rs *RestfulServer) ResolveComplaint(c *gin.Context) {
	var req ResolveRequest
	if err := resolveRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	complaint, err := rs.Facility.Complaint.Resolve(currentUser(c), c.Param("id"), req.Notes)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

func (rs *RestfulServer) CloseComplaint(c *gin.Context) {
	complaint, err := rs.Facility.Complaint.Close(currentUser(c), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

func (rs *RestfulServer) EscalateComplaint(c *gin.Context) {
	complaint, err := rs.Facility.Complaint.Escalate(currentUser(c), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

var feedbackRequestSchema = z.Struct(z.Shape{
	"Rating":  z.Int().GTE(1).LTE(5).Required(),
	"Message": z.String().Max(1000),
})

func (rs *RestfulServer) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := feedbackRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	feedback, err := rs.Facility.Feedback.Submit(currentUser(c), c.Param("id"), req.Rating, req.Message)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

func (rs *RestfulServer) ListComplaintFeedback(c *gin.Context) {
	feedback, err := rs.Facility.Feedback.ListForComplaint(currentUser(c), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

func (rs *RestfulServer) ListAllFeedback(c *gin.Context) {
	feedback, err := rs.Facility.Feedback.ListAll()
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}
