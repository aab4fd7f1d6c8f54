package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"facilityhub.dev/facility-service/pkg/auth"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Email":       z.String().Required(),
	"Password":    z.String().Min(8).Required(),
	"DisplayName": z.String().Max(100),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Facility.User.Register(req.Email, req.Password, req.DisplayName)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Facility.User.Authenticate(req.Email, req.Password)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	token, err := auth.GenerateToken(rs.JWTSecret, user, auth.DefaultTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (rs *RestfulServer) DeactivateUser(c *gin.Context) {
	admin := currentUser(c)

	if err := rs.Facility.User.Deactivate(admin, c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
