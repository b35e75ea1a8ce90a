package entity

type Appointment struct {
	ID           int    `gorm:"primaryKey"`
	PatientName  string `gorm:"not null"`
	PatientEmail string `gorm:"not null"`
	PatientPhone *string
	DoctorID     *int   // References: doctors(id); cleared when the doctor is removed
	ServiceID    *int   // References: services(id); cleared when the service is removed
	Date         string `gorm:"not null"` // YYYY-MM-DD
	TimeSlot     string `gorm:"not null"` // free-text label, e.g. "10:00"
	Notes        *string
	Status       string `gorm:"not null"` // stored as text, constrained by ParseStatus at the boundary
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null"`
}
