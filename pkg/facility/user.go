package facility

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"facilityhub.dev/facility-service/pkg/common"
	"facilityhub.dev/facility-service/pkg/models"
)

const minPasswordLen = 8

func userLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameFacilityCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryUser),
	)
}

func (f *Facility) registerUser(email, password, displayName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errValidation("email", "must be a valid email address")
	}
	if len(password) < minPasswordLen {
		return nil, errValidation("password", "must be at least 8 characters")
	}

	var existing int64
	if err := f.Db.Conn.Model(&models.User{}).
		Where("email = ?", email).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, errValidation("email", "already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := f.Db.Conn.Create(&u).Error; err != nil {
		return nil, err
	}

	userLogger().Info("User registered", zap.String("id", u.ID))
	return &u, nil
}

func (f *Facility) authenticateUser(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u models.User
	if err := f.Db.Conn.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errAuthz("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errAuthz("invalid credentials")
	}
	if !u.IsActive {
		return nil, errAuthz("account deactivated")
	}

	return &u, nil
}

func (f *Facility) getUserByID(id string) (*models.User, error) {
	var u models.User
	if err := f.Db.Conn.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("user", id)
		}
		return nil, err
	}
	return &u, nil
}

// deactivateUser soft-disables an account; records owned by it stay put.
func (f *Facility) deactivateUser(admin *models.User, id string) error {
	if admin.ID == id {
		return errValidation("id", "cannot deactivate own account")
	}

	u, err := f.getUserByID(id)
	if err != nil {
		return err
	}

	u.IsActive = false
	if err := f.Db.Conn.Save(u).Error; err != nil {
		return err
	}

	userLogger().Info("User deactivated", zap.String("id", id), zap.String("admin", admin.ID))
	return nil
}

func (f *Facility) promoteUser(id string) error {
	u, err := f.getUserByID(id)
	if err != nil {
		return err
	}

	u.Role = models.RoleAdmin
	if err := f.Db.Conn.Save(u).Error; err != nil {
		return err
	}

	userLogger().Info("User promoted to admin", zap.String("id", id))
	return nil
}

type IUserImpl struct {
	facility *Facility
}

func (iu *IUserImpl) Register(email, password, displayName string) (*models.User, error) {
	return iu.facility.registerUser(email, password, displayName)
}

func (iu *IUserImpl) Authenticate(email, password string) (*models.User, error) {
	return iu.facility.authenticateUser(email, password)
}

func (iu *IUserImpl) GetByID(id string) (*models.User, error) {
	return iu.facility.getUserByID(id)
}

func (iu *IUserImpl) Deactivate(admin *models.User, id string) error {
	return iu.facility.deactivateUser(admin, id)
}

func (iu *IUserImpl) Promote(id string) error {
	return iu.facility.promoteUser(id)
}

func (f *Facility) GetIUser() IUser {
	return &IUserImpl{facility: f}
}
