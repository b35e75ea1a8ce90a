package service

import (
	"sort"

	"clinicapi/cmd/internal/domain/entity"
	"clinicapi/cmd/internal/domain/sqlite/repository"
	"clinicapi/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
)

func newTestValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("dateymd", validators.DateYMD)
	return v
}

func ptr[T any](v T) *T { return &v }

type fakeDoctorRepo struct {
	doctors map[int]*entity.Doctor
	nextID  int
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[int]*entity.Doctor{}, nextID: 1}
}

func (f *fakeDoctorRepo) FindByID(id int) (*entity.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) FindAll(onlyAvailable bool) ([]*entity.Doctor, error) {
	var out []*entity.Doctor
	for _, d := range f.doctors {
		if onlyAvailable && !d.Available {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDoctorRepo) Save(doctor *entity.Doctor) error {
	if doctor.ID == 0 {
		doctor.ID = f.nextID
		f.nextID++
	}
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) Delete(doctor *entity.Doctor) error {
	delete(f.doctors, doctor.ID)
	return nil
}

type fakeServiceRepo struct {
	services map[int]*entity.Service
	nextID   int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[int]*entity.Service{}, nextID: 1}
}

func (f *fakeServiceRepo) FindByID(id int) (*entity.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) FindAll(onlyActive bool) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range f.services {
		if onlyActive && !s.Active {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeServiceRepo) Save(service *entity.Service) error {
	if service.ID == 0 {
		service.ID = f.nextID
		f.nextID++
	}
	f.services[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) Delete(service *entity.Service) error {
	delete(f.services, service.ID)
	return nil
}

type fakeAppointmentRepo struct {
	appts  map[int]*entity.Appointment
	nextID int

	// beforeStatusUpdate runs between the transition check and the guarded
	// write, standing in for a concurrent writer.
	beforeStatusUpdate func()
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: map[int]*entity.Appointment{}, nextID: 1}
}

func (f *fakeAppointmentRepo) FindByID(id int) (*entity.Appointment, error) {
	if appt, ok := f.appts[id]; ok {
		cp := *appt
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindAll(filter repository.AppointmentFilter) ([]*entity.Appointment, error) {
	var out []*entity.Appointment
	for _, appt := range f.appts {
		if filter.DoctorID != nil && (appt.DoctorID == nil || *appt.DoctorID != *filter.DoctorID) {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		if filter.Date != nil && appt.Date != *filter.Date {
			continue
		}
		out = append(out, appt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAppointmentRepo) Save(appointment *entity.Appointment) error {
	if appointment.ID == 0 {
		appointment.ID = f.nextID
		f.nextID++
	}
	cp := *appointment
	f.appts[appointment.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) UpdateStatusFrom(id int, from, to string, now int64) (bool, error) {
	if f.beforeStatusUpdate != nil {
		f.beforeStatusUpdate()
	}
	appt, ok := f.appts[id]
	if !ok || appt.Status != from {
		return false, nil
	}
	appt.Status = to
	appt.UpdatedAt = now
	return true, nil
}

func (f *fakeAppointmentRepo) Delete(appointment *entity.Appointment) error {
	delete(f.appts, appointment.ID)
	return nil
}

type fakeBlogPostRepo struct {
	posts  map[int]*entity.BlogPost
	nextID int
}

func newFakeBlogPostRepo() *fakeBlogPostRepo {
	return &fakeBlogPostRepo{posts: map[int]*entity.BlogPost{}, nextID: 1}
}

func (f *fakeBlogPostRepo) FindByID(id int) (*entity.BlogPost, error) {
	if post, ok := f.posts[id]; ok {
		cp := *post
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeBlogPostRepo) FindAll(onlyPublished bool) ([]*entity.BlogPost, error) {
	var out []*entity.BlogPost
	for _, p := range f.posts {
		if onlyPublished && !p.Published {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBlogPostRepo) Save(post *entity.BlogPost) error {
	if post.ID == 0 {
		post.ID = f.nextID
		f.nextID++
	}
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakeBlogPostRepo) IncrementViews(id int) error {
	if post, ok := f.posts[id]; ok {
		post.Views++
	}
	return nil
}

func (f *fakeBlogPostRepo) Delete(post *entity.BlogPost) error {
	delete(f.posts, post.ID)
	return nil
}

type fakeTestimonialRepo struct {
	testimonials map[int]*entity.Testimonial
	nextID       int
}

func newFakeTestimonialRepo() *fakeTestimonialRepo {
	return &fakeTestimonialRepo{testimonials: map[int]*entity.Testimonial{}, nextID: 1}
}

func (f *fakeTestimonialRepo) FindByID(id int) (*entity.Testimonial, error) {
	return f.testimonials[id], nil
}

func (f *fakeTestimonialRepo) FindAll(onlyActive bool) ([]*entity.Testimonial, error) {
	var out []*entity.Testimonial
	for _, tm := range f.testimonials {
		if onlyActive && !tm.Active {
			continue
		}
		out = append(out, tm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTestimonialRepo) Save(testimonial *entity.Testimonial) error {
	if testimonial.ID == 0 {
		testimonial.ID = f.nextID
		f.nextID++
	}
	f.testimonials[testimonial.ID] = testimonial
	return nil
}

func (f *fakeTestimonialRepo) Delete(testimonial *entity.Testimonial) error {
	delete(f.testimonials, testimonial.ID)
	return nil
}
