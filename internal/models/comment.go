package models

type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  uint   `gorm:"not null;index" json:"post_id"`
	ZID     string `gorm:"size:8;not null;index" json:"zid"`
	Time    string `gorm:"size:32;not null" json:"time"`
	Message string `gorm:"type:text;not null" json:"message"`
}

func (Comment) TableName() string {
	return "comments"
}
