package models

// Student is an active account. The zid is university-issued and never
// changes, so it doubles as the primary key across all tables.
type Student struct {
	ZID           string `gorm:"primaryKey;size:8" json:"zid"`
	Email         string `gorm:"size:255;not null" json:"email"`
	Password      string `gorm:"not null" json:"-"`
	FullName      string `gorm:"size:255;not null" json:"full_name"`
	Birthday      string `gorm:"size:32" json:"birthday"`
	Program       string `gorm:"size:255" json:"program"`
	HomeSuburb    string `gorm:"size:255" json:"home_suburb"`
	HomeLongitude string `gorm:"size:32" json:"-"`
	HomeLatitude  string `gorm:"size:32" json:"-"`
	ProfileImg    string `gorm:"size:512" json:"profile_img"`
	ProfileText   string `gorm:"type:text" json:"profile_text"`
}

func (Student) TableName() string {
	return "students"
}
