package facility

import (
	"time"

	"facilityhub.dev/facility-service/pkg/db"
	"facilityhub.dev/facility-service/pkg/events"
	"facilityhub.dev/facility-service/pkg/models"
)

type ComplaintInput struct {
	Title       string
	Description string
	Category    models.ComplaintCategory
	Priority    models.ComplaintPriority
	Location    string
}

type ComplaintUpdate struct {
	Title       *string
	Description *string
	Category    *models.ComplaintCategory
	Priority    *models.ComplaintPriority
	Location    *string
}

type ComplaintFilter struct {
	Status   models.ComplaintStatus
	Category models.ComplaintCategory
	Priority models.ComplaintPriority
	UserID   string
	Offset   int
	Limit    int
}

type SensorInput struct {
	Name         string
	Type         models.SensorType
	DeviceID     string
	Threshold    float64
	Unit         string
	BatteryLevel float64
	SignalLevel  float64
}

type MaintenanceInput struct {
	Date        time.Time
	Type        string
	Description string
	PerformedBy string
}

type IComplaint interface {
	Create(actor *models.User, input ComplaintInput) (*models.Complaint, error)
	Get(actor *models.User, id string) (*models.Complaint, error)
	List(actor *models.User, filter ComplaintFilter) ([]models.Complaint, int64, error)
	RecordResponse(responder *models.User, id string, message string) (*models.Complaint, error)
	Start(admin *models.User, id string) (*models.Complaint, error)
	Resolve(resolver *models.User, id string, notes string) (*models.Complaint, error)
	Close(admin *models.User, id string) (*models.Complaint, error)
	Escalate(admin *models.User, id string) (*models.Complaint, error)
	Update(actor *models.User, id string, input ComplaintUpdate) (*models.Complaint, error)
	Delete(actor *models.User, id string) error
}

type IFeedback interface {
	Submit(actor *models.User, complaintID string, rating int, message string) (*models.Feedback, error)
	ListForComplaint(actor *models.User, complaintID string) ([]models.Feedback, error)
	ListAll() ([]models.Feedback, error)
}

type ISensor interface {
	Create(input SensorInput) (*models.Sensor, error)
	Get(id string) (*models.Sensor, error)
	List() ([]models.Sensor, error)
	AddReading(deviceID string, value float64, at time.Time) (*models.Sensor, error)
	Readings(sensorID string) ([]models.SensorReading, error)
	Alerts(sensorID string) ([]models.SensorAlert, error)
	AcknowledgeAlert(admin *models.User, sensorID string, alertID uint) (*models.SensorAlert, error)
	AddMaintenance(sensorID string, input MaintenanceInput) (*models.MaintenanceRecord, error)
	SetActive(sensorID string, active bool) error
	SweepOffline(olderThan time.Duration) (int64, error)
}

type IUser interface {
	Register(email, password, displayName string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Deactivate(admin *models.User, id string) error
	Promote(id string) error
}

// Facility aggregates the domain services over one DB handle. The Events
// publisher may be nil, in which case change events are dropped.
type Facility struct {
	Db     db.DB
	Events *events.Publisher

	Complaint IComplaint
	Feedback  IFeedback
	Sensor    ISensor
	User      IUser
}

type ServiceOpts struct {
	Complaint IComplaint
	Feedback  IFeedback
	Sensor    ISensor
	User      IUser
}

func (f *Facility) WithServices(opts ServiceOpts) *Facility {
	if opts.Complaint != nil {
		f.Complaint = opts.Complaint
	}
	if opts.Feedback != nil {
		f.Feedback = opts.Feedback
	}
	if opts.Sensor != nil {
		f.Sensor = opts.Sensor
	}
	if opts.User != nil {
		f.User = opts.User
	}
	return f
}
