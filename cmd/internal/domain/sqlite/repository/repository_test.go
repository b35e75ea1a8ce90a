package repository

import (
	"path/filepath"
	"testing"

	"clinicapi/cmd/internal/domain/entity"
	"clinicapi/cmd/internal/domain/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func intp(v int) *int { return &v }

func TestDeleteDoctorClearsAppointmentReference(t *testing.T) {
	db := newTestDB(t)
	doctorRepo := NewDoctorRepository(db)
	apptRepo := NewAppointmentRepository(db)

	doctor := &entity.Doctor{Name: "Dr. Smith", Specialty: "Cardiology", Available: true, CreatedAt: 1, UpdatedAt: 1}
	if err := doctorRepo.Save(doctor); err != nil {
		t.Fatalf("failed to save doctor: %v", err)
	}

	appt := &entity.Appointment{
		PatientName:  "Jane Doe",
		PatientEmail: "jane@example.com",
		DoctorID:     intp(doctor.ID),
		Date:         "2025-06-01",
		TimeSlot:     "10:00",
		Status:       "pending",
		CreatedAt:    1,
		UpdatedAt:    1,
	}
	if err := apptRepo.Save(appt); err != nil {
		t.Fatalf("failed to save appointment: %v", err)
	}

	if err := doctorRepo.Delete(doctor); err != nil {
		t.Fatalf("failed to delete doctor: %v", err)
	}

	got, err := apptRepo.FindByID(appt.ID)
	if err != nil {
		t.Fatalf("failed to re-read appointment: %v", err)
	}
	if got == nil {
		t.Fatal("appointment was deleted along with its doctor")
	}
	if got.DoctorID != nil {
		t.Errorf("doctor reference = %v, want cleared", *got.DoctorID)
	}
}

func TestDeleteServiceClearsAppointmentReference(t *testing.T) {
	db := newTestDB(t)
	serviceRepo := NewServiceRepository(db)
	apptRepo := NewAppointmentRepository(db)

	svc := &entity.Service{Name: "Checkup", Category: "general", Active: true, CreatedAt: 1, UpdatedAt: 1}
	if err := serviceRepo.Save(svc); err != nil {
		t.Fatalf("failed to save service: %v", err)
	}

	appt := &entity.Appointment{
		PatientName:  "Jane Doe",
		PatientEmail: "jane@example.com",
		ServiceID:    intp(svc.ID),
		Date:         "2025-06-01",
		TimeSlot:     "10:00",
		Status:       "pending",
		CreatedAt:    1,
		UpdatedAt:    1,
	}
	if err := apptRepo.Save(appt); err != nil {
		t.Fatalf("failed to save appointment: %v", err)
	}

	if err := serviceRepo.Delete(svc); err != nil {
		t.Fatalf("failed to delete service: %v", err)
	}

	got, err := apptRepo.FindByID(appt.ID)
	if err != nil {
		t.Fatalf("failed to re-read appointment: %v", err)
	}
	if got == nil || got.ServiceID != nil {
		t.Errorf("service reference not cleared: %+v", got)
	}
}

func TestUpdateStatusFromGuard(t *testing.T) {
	db := newTestDB(t)
	apptRepo := NewAppointmentRepository(db)

	appt := &entity.Appointment{
		PatientName:  "Jane Doe",
		PatientEmail: "jane@example.com",
		Date:         "2025-06-01",
		TimeSlot:     "10:00",
		Status:       "pending",
		CreatedAt:    1,
		UpdatedAt:    1,
	}
	if err := apptRepo.Save(appt); err != nil {
		t.Fatalf("failed to save appointment: %v", err)
	}

	updated, err := apptRepo.UpdateStatusFrom(appt.ID, "pending", "confirmed", 2)
	if err != nil || !updated {
		t.Fatalf("guarded update from pending: updated=%v err=%v", updated, err)
	}

	// Guard no longer matches; the row must stay confirmed.
	updated, err = apptRepo.UpdateStatusFrom(appt.ID, "pending", "cancelled", 3)
	if err != nil {
		t.Fatalf("guarded update errored: %v", err)
	}
	if updated {
		t.Error("stale guard was accepted")
	}

	got, err := apptRepo.FindByID(appt.ID)
	if err != nil {
		t.Fatalf("failed to re-read appointment: %v", err)
	}
	if got.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", got.Status)
	}
	if got.UpdatedAt != 2 {
		t.Errorf("updated_at = %d, want 2", got.UpdatedAt)
	}
}

func TestAppointmentFilters(t *testing.T) {
	db := newTestDB(t)
	apptRepo := NewAppointmentRepository(db)

	seed := []*entity.Appointment{
		{PatientName: "A", PatientEmail: "a@example.com", DoctorID: intp(1), Date: "2025-06-01", TimeSlot: "09:00", Status: "pending", CreatedAt: 1, UpdatedAt: 1},
		{PatientName: "B", PatientEmail: "b@example.com", DoctorID: intp(2), Date: "2025-06-01", TimeSlot: "10:00", Status: "confirmed", CreatedAt: 1, UpdatedAt: 1},
		{PatientName: "C", PatientEmail: "c@example.com", Date: "2025-06-02", TimeSlot: "10:00", Status: "pending", CreatedAt: 1, UpdatedAt: 1},
	}
	for _, appt := range seed {
		if err := apptRepo.Save(appt); err != nil {
			t.Fatalf("failed to seed appointment: %v", err)
		}
	}

	cases := []struct {
		name   string
		filter AppointmentFilter
		want   int
	}{
		{"no filter", AppointmentFilter{}, 3},
		{"by status", AppointmentFilter{Status: strp("pending")}, 2},
		{"by doctor", AppointmentFilter{DoctorID: intp(1)}, 1},
		{"by date", AppointmentFilter{Date: strp("2025-06-01")}, 2},
		{"combined", AppointmentFilter{Status: strp("pending"), Date: strp("2025-06-02")}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := apptRepo.FindAll(tc.filter)
			if err != nil {
				t.Fatalf("FindAll failed: %v", err)
			}
			if len(got) != tc.want {
				t.Errorf("got %d appointments, want %d", len(got), tc.want)
			}
		})
	}
}

func TestBlogPostIncrementViews(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewBlogPostRepository(db)

	post := &entity.BlogPost{Title: "Live", Published: true, CreatedAt: 1, UpdatedAt: 1}
	if err := postRepo.Save(post); err != nil {
		t.Fatalf("failed to save post: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := postRepo.IncrementViews(post.ID); err != nil {
			t.Fatalf("IncrementViews failed: %v", err)
		}
	}

	got, err := postRepo.FindByID(post.ID)
	if err != nil {
		t.Fatalf("failed to re-read post: %v", err)
	}
	if got.Views != 3 {
		t.Errorf("views = %d, want 3", got.Views)
	}
}

func TestVisibilityFilteredFinders(t *testing.T) {
	db := newTestDB(t)
	doctorRepo := NewDoctorRepository(db)
	testimonialRepo := NewTestimonialRepository(db)

	doctors := []*entity.Doctor{
		{Name: "Dr. Visible", Specialty: "Cardiology", Available: true, CreatedAt: 1, UpdatedAt: 1},
		{Name: "Dr. Hidden", Specialty: "Neurology", Available: false, CreatedAt: 1, UpdatedAt: 1},
	}
	for _, d := range doctors {
		if err := doctorRepo.Save(d); err != nil {
			t.Fatalf("failed to seed doctor: %v", err)
		}
	}

	visible, err := doctorRepo.FindAll(true)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(visible) != 1 || visible[0].Name != "Dr. Visible" {
		t.Errorf("visible doctors = %+v", visible)
	}

	all, err := doctorRepo.FindAll(false)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d doctors, want 2", len(all))
	}

	tm := &entity.Testimonial{PatientName: "Bob", Content: "Hidden", Rating: 2, Active: false, CreatedAt: 1, UpdatedAt: 1}
	if err := testimonialRepo.Save(tm); err != nil {
		t.Fatalf("failed to seed testimonial: %v", err)
	}
	active, err := testimonialRepo.FindAll(true)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("inactive testimonial leaked into visible set: %+v", active)
	}
}

func strp(s string) *string { return &s }
