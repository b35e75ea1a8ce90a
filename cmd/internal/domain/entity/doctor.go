package entity

type Doctor struct {
	ID         int    `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Specialty  string `gorm:"not null"`
	Bio        string
	Image      string
	SocialX    *string
	SocialFB   *string
	SocialIG   *string
	Experience int   `gorm:"not null"` // years, non-negative
	Available  bool  `gorm:"not null;default:true"`
	CreatedAt  int64 `gorm:"not null"`
	UpdatedAt  int64 `gorm:"not null"`
}
