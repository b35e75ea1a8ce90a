package entity

type Service struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Icon        string
	Category    string `gorm:"not null;default:general"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null"`
}
