package models

// Enrollment links a student to a course code. Duplicate rows are tolerated;
// readers treat a student's courses as a set.
type Enrollment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	ZID    string `gorm:"size:8;not null;index" json:"zid"`
	Course string `gorm:"size:64;not null;index" json:"course"`
}

func (Enrollment) TableName() string {
	return "courses"
}
