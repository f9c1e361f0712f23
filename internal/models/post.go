package models

// TimeLayout is the stored timestamp format for posts, comments and
// replies: ISO-8601 with a numeric timezone offset.
const TimeLayout = "2006-01-02T15:04:05-0700"

type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	ZID     string `gorm:"size:8;not null;index" json:"zid"`
	Time    string `gorm:"size:32;not null;index" json:"time"`
	Message string `gorm:"type:text;not null" json:"message"`
}

func (Post) TableName() string {
	return "posts"
}
