package service

import (
	"clinicapi/cmd/internal/authz"
	"clinicapi/cmd/internal/domain/entity"
	"clinicapi/cmd/internal/domain/sqlite/repository"
	"clinicapi/cmd/internal/utils"
	"clinicapi/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AppointmentRepository interface {
	Save(appointment *entity.Appointment) error
	FindAll(filter repository.AppointmentFilter) ([]*entity.Appointment, error)
	FindByID(id int) (*entity.Appointment, error)
	UpdateStatusFrom(id int, from, to string, now int64) (bool, error)
	Delete(appointment *entity.Appointment) error
}

type AppointmentRequest struct {
	PatientName  string  `json:"patient_name" validate:"required,min=2,max=120"`
	PatientEmail string  `json:"patient_email" validate:"required,email"`
	PatientPhone *string `json:"patient_phone" validate:"omitempty,max=40"`
	DoctorID     *int    `json:"doctor_id"`
	ServiceID    *int    `json:"service_id"`
	Date         string  `json:"appointment_date" validate:"required,dateymd"`
	TimeSlot     string  `json:"appointment_time" validate:"required,max=40"`
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AppointmentResponse struct {
	ID           int     `json:"id"`
	PatientName  string  `json:"patient_name"`
	PatientEmail string  `json:"patient_email"`
	PatientPhone *string `json:"patient_phone"`
	DoctorID     *int    `json:"doctor_id"`
	ServiceID    *int    `json:"service_id"`
	Date         string  `json:"appointment_date"`
	TimeSlot     string  `json:"appointment_time"`
	Notes        *string `json:"notes"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	DoctorRepo      DoctorRepository
	ServiceRepo     ServiceRepository
	Validate        *validator.Validate
}

func NewAppointmentService(apptRepo AppointmentRepository, doctorRepo DoctorRepository, serviceRepo ServiceRepository, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		AppointmentRepo: apptRepo,
		DoctorRepo:      doctorRepo,
		ServiceRepo:     serviceRepo,
		Validate:        validate,
	}
}

// CreateAppointment is the public booking path. Anyone may call it; the
// created appointment always starts out pending.
func (a *DefaultAppointmentService) CreateAppointment(actor authz.Actor, req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindAppointment, authz.OpCreate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := a.checkReferences(req); apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	appointment := &entity.Appointment{
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		PatientPhone: req.PatientPhone,
		DoctorID:     req.DoctorID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
		Notes:        req.Notes,
		Status:       string(entity.StatusPending),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.AppointmentRepo.Save(appointment); err != nil {
		log.Errorf("failed to save appointment: %v", err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appointment), nil
}

func (a *DefaultAppointmentService) GetAppointments(actor authz.Actor, filter repository.AppointmentFilter) ([]*AppointmentResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindAppointment, authz.OpRead) {
		return nil, apierror.AuthorizationError
	}

	if filter.Status != nil {
		if _, err := entity.ParseStatus(*filter.Status); err != nil {
			return nil, apierror.NewValidationError("Unknown appointment status filter")
		}
	}

	appts, err := a.AppointmentRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to find appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt)
	}
	return response, nil
}

// UpdateAppointment replaces the booking fields of an existing appointment.
// Status is untouched here; transitions go through UpdateStatus.
func (a *DefaultAppointmentService) UpdateAppointment(actor authz.Actor, id int, req *AppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindAppointment, authz.OpUpdate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := a.checkReferences(req); apierr != nil {
		return nil, apierr
	}

	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NewNotFoundError("Appointment")
	}

	appt.PatientName = req.PatientName
	appt.PatientEmail = req.PatientEmail
	appt.PatientPhone = req.PatientPhone
	appt.DoctorID = req.DoctorID
	appt.ServiceID = req.ServiceID
	appt.Date = req.Date
	appt.TimeSlot = req.TimeSlot
	appt.Notes = req.Notes
	appt.UpdatedAt = utils.NowUTC()

	if err := a.AppointmentRepo.Save(appt); err != nil {
		log.Errorf("failed to update appointment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAppointmentResponse(appt), nil
}

// UpdateStatus moves an appointment through its workflow. The write is a
// conditional update guarded by the status the transition was checked
// against, so a racing transition fails rather than overwriting.
func (a *DefaultAppointmentService) UpdateStatus(actor authz.Actor, id int, req *StatusRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	if !authz.Allowed(actor, authz.KindAppointment, authz.OpUpdate) {
		return nil, apierror.AuthorizationError
	}

	utils.Sanitize(req)
	target, err := entity.ParseStatus(req.Status)
	if err != nil {
		return nil, apierror.NewValidationError("Unknown appointment status")
	}

	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if appt == nil {
		return nil, apierror.NewNotFoundError("Appointment")
	}

	current, err := entity.ParseStatus(appt.Status)
	if err != nil {
		log.Errorf("appointment %d carries unknown status %q", id, appt.Status)
		return nil, apierror.InternalServerError
	}

	if !entity.CanTransition(current, target) {
		return nil, apierror.NewInvalidTransitionError(string(current), string(target))
	}

	now := utils.NowUTC()
	updated, err := a.AppointmentRepo.UpdateStatusFrom(id, string(current), string(target), now)
	if err != nil {
		log.Errorf("failed to transition appointment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if !updated {
		// A concurrent transition won; the state we validated against is gone.
		return nil, apierror.NewInvalidTransitionError(string(current), string(target))
	}

	appt.Status = string(target)
	appt.UpdatedAt = now
	return toAppointmentResponse(appt), nil
}

func (a *DefaultAppointmentService) DeleteAppointment(actor authz.Actor, id int) apierror.ErrorResponse {
	if !authz.Allowed(actor, authz.KindAppointment, authz.OpDelete) {
		return apierror.AuthorizationError
	}

	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment %d: %v", id, err)
		return apierror.InternalServerError
	}
	if appt == nil {
		return apierror.NewNotFoundError("Appointment")
	}

	if err := a.AppointmentRepo.Delete(appt); err != nil {
		log.Errorf("failed to delete appointment %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// checkReferences verifies supplied doctor/service ids resolve to existing
// records at write time.
func (a *DefaultAppointmentService) checkReferences(req *AppointmentRequest) apierror.ErrorResponse {
	if req.DoctorID != nil {
		doctor, err := a.DoctorRepo.FindByID(*req.DoctorID)
		if err != nil {
			log.Errorf("failed to resolve doctor %d: %v", *req.DoctorID, err)
			return apierror.InternalServerError
		}
		if doctor == nil {
			return apierror.NewValidationError("Referenced doctor does not exist")
		}
	}
	if req.ServiceID != nil {
		svc, err := a.ServiceRepo.FindByID(*req.ServiceID)
		if err != nil {
			log.Errorf("failed to resolve service %d: %v", *req.ServiceID, err)
			return apierror.InternalServerError
		}
		if svc == nil {
			return apierror.NewValidationError("Referenced service does not exist")
		}
	}
	return nil
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           appt.ID,
		PatientName:  appt.PatientName,
		PatientEmail: appt.PatientEmail,
		PatientPhone: appt.PatientPhone,
		DoctorID:     appt.DoctorID,
		ServiceID:    appt.ServiceID,
		Date:         appt.Date,
		TimeSlot:     appt.TimeSlot,
		Notes:        appt.Notes,
		Status:       appt.Status,
		CreatedAt:    utils.FormatEpoch(appt.CreatedAt),
		UpdatedAt:    utils.FormatEpoch(appt.UpdatedAt),
	}
}
