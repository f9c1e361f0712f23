package models

// PendingStudent is a registration waiting for its emailed confirmation
// code. Confirming moves the row into students.
type PendingStudent struct {
	ZID              string `gorm:"primaryKey;size:8" json:"zid"`
	Email            string `gorm:"size:255;not null" json:"email"`
	Password         string `gorm:"not null" json:"-"`
	FullName         string `gorm:"size:255" json:"full_name"`
	Birthday         string `gorm:"size:32" json:"birthday"`
	Program          string `gorm:"size:255" json:"program"`
	HomeSuburb       string `gorm:"size:255" json:"home_suburb"`
	HomeLongitude    string `gorm:"size:32" json:"-"`
	HomeLatitude     string `gorm:"size:32" json:"-"`
	ProfileImg       string `gorm:"size:512" json:"profile_img"`
	ProfileText      string `gorm:"type:text" json:"profile_text"`
	ConfirmationCode string `gorm:"size:16;not null" json:"-"`
}

func (PendingStudent) TableName() string {
	return "to_be_confirmed"
}

// SuspendedStudent is a quarantined account. A zid lives in exactly one of
// students or to_be_suspended; the account's posts, comments and friendships
// stay in place and are filtered at read time instead.
type SuspendedStudent struct {
	ZID           string `gorm:"primaryKey;size:8" json:"zid"`
	Email         string `gorm:"size:255;not null" json:"email"`
	Password      string `gorm:"not null" json:"-"`
	FullName      string `gorm:"size:255" json:"full_name"`
	Birthday      string `gorm:"size:32" json:"birthday"`
	Program       string `gorm:"size:255" json:"program"`
	HomeSuburb    string `gorm:"size:255" json:"home_suburb"`
	HomeLongitude string `gorm:"size:32" json:"-"`
	HomeLatitude  string `gorm:"size:32" json:"-"`
	ProfileImg    string `gorm:"size:512" json:"profile_img"`
	ProfileText   string `gorm:"type:text" json:"profile_text"`
}

func (SuspendedStudent) TableName() string {
	return "to_be_suspended"
}
