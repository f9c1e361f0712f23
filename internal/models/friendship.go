package models

// Friendship is one direction of a friend edge. Edges are always written and
// deleted as a symmetric pair inside a single transaction, so (a,b) existing
// without (b,a) is never a reachable state.
type Friendship struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ZID       string `gorm:"size:8;not null;index" json:"zid"`
	FriendZID string `gorm:"size:8;not null;index" json:"friend_zid"`
}

func (Friendship) TableName() string {
	return "friends"
}
