package entity

type BlogPost struct {
	ID        int    `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Excerpt   string
	Content   string
	Image     string
	Author    string
	Category  string
	Published bool  `gorm:"not null;default:true"`
	Views     int64 `gorm:"not null;default:0"` // monotonically non-decreasing
	CreatedAt int64 `gorm:"not null"`
	UpdatedAt int64 `gorm:"not null"`
}
