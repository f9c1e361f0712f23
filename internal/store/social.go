package store

import (
	"fmt"

	"github.com/yunqiuxu/unswtalk/internal/models"
	"gorm.io/gorm"
)

// FriendZIDs returns the raw friend edges for zid, without suspension
// filtering. Callers that need visibility rules go through the social
// package.
func (s *Store) FriendZIDs(zid string) ([]string, error) {
	var zids []string
	err := s.db.Model(&models.Friendship{}).Where("zid = ?", zid).
		Pluck("friend_zid", &zids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load friends: %w", err)
	}
	return zids, nil
}

// Courses returns the distinct course codes zid is enrolled in.
func (s *Store) Courses(zid string) ([]string, error) {
	var courses []string
	err := s.db.Model(&models.Enrollment{}).Distinct("course").
		Where("zid = ?", zid).Pluck("course", &courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	return courses, nil
}

// AddFriendship inserts both directions of the edge in one transaction.
// The pair invariant: (a,b) and (b,a) exist together or not at all.
func (s *Store) AddFriendship(a, b string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Friendship{ZID: a, FriendZID: b}).Error; err != nil {
			return fmt.Errorf("failed to add friendship: %w", err)
		}
		if err := tx.Create(&models.Friendship{ZID: b, FriendZID: a}).Error; err != nil {
			return fmt.Errorf("failed to add friendship: %w", err)
		}
		return nil
	})
}

// RemoveFriendship deletes both directions of the edge in one transaction.
func (s *Store) RemoveFriendship(a, b string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("zid = ? AND friend_zid = ?", a, b).
			Delete(&models.Friendship{}).Error; err != nil {
			return fmt.Errorf("failed to remove friendship: %w", err)
		}
		if err := tx.Where("zid = ? AND friend_zid = ?", b, a).
			Delete(&models.Friendship{}).Error; err != nil {
			return fmt.Errorf("failed to remove friendship: %w", err)
		}
		return nil
	})
}

// CourseMates returns everyone sharing at least one course with zid,
// excluding zid itself and its current friends.
func (s *Store) CourseMates(zid string) ([]string, error) {
	var zids []string
	err := s.db.Model(&models.Enrollment{}).Distinct("zid").
		Where("course IN (?)",
			s.db.Model(&models.Enrollment{}).Select("course").Where("zid = ?", zid)).
		Where("zid <> ?", zid).
		Where("zid NOT IN (?)",
			s.db.Model(&models.Friendship{}).Select("friend_zid").Where("zid = ?", zid)).
		Pluck("zid", &zids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load course mates: %w", err)
	}
	return zids, nil
}

// FriendsOfFriends returns everyone sharing at least one friend with zid,
// excluding zid itself and its current friends.
func (s *Store) FriendsOfFriends(zid string) ([]string, error) {
	var zids []string
	err := s.db.Model(&models.Friendship{}).Distinct("zid").
		Where("friend_zid IN (?)",
			s.db.Model(&models.Friendship{}).Select("friend_zid").Where("zid = ?", zid)).
		Where("zid <> ?", zid).
		Where("zid NOT IN (?)",
			s.db.Model(&models.Friendship{}).Select("friend_zid").Where("zid = ?", zid)).
		Pluck("zid", &zids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load friends of friends: %w", err)
	}
	return zids, nil
}

// StrangerZIDs returns every active zid that is neither zid itself nor one
// of its friends, the fallback pool when no graph-connected candidate
// exists.
func (s *Store) StrangerZIDs(zid string) ([]string, error) {
	var zids []string
	err := s.db.Model(&models.Student{}).
		Where("zid <> ?", zid).
		Where("zid NOT IN (?)",
			s.db.Model(&models.Friendship{}).Select("friend_zid").Where("zid = ?", zid)).
		Pluck("zid", &zids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestion pool: %w", err)
	}
	return zids, nil
}
