package entity

type Testimonial struct {
	ID           int    `gorm:"primaryKey"`
	PatientName  string `gorm:"not null"`
	PatientTitle string
	Content      string `gorm:"not null"`
	Rating       int    `gorm:"not null"` // conventionally 1-5, validated at the access layer
	Image        *string
	Active       bool  `gorm:"not null;default:true"`
	CreatedAt    int64 `gorm:"not null"`
	UpdatedAt    int64 `gorm:"not null"`
}
