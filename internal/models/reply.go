package models

type Reply struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CommentID uint   `gorm:"not null;index" json:"comment_id"`
	ZID       string `gorm:"size:8;not null;index" json:"zid"`
	Time      string `gorm:"size:32;not null" json:"time"`
	Message   string `gorm:"type:text;not null" json:"message"`
}

func (Reply) TableName() string {
	return "replies"
}
