package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/yunqiuxu/unswtalk/internal/models"
	"gorm.io/gorm"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrPendingNotFound = errors.New("no pending registration for this zid")
	ErrNotSuspended    = errors.New("account is not suspended")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrReplyNotFound   = errors.New("reply not found")
)

// Store is the persistence layer over the student, quarantine, enrollment,
// friendship and content tables.
type Store struct {
	db *gorm.DB

	// suspendFailOpen makes IsSuspended report "not suspended" when the
	// quarantine lookup itself fails, instead of propagating the error.
	suspendFailOpen bool
}

func New(db *gorm.DB, suspendFailOpen bool) *Store {
	return &Store{db: db, suspendFailOpen: suspendFailOpen}
}

// Profile returns the active account for zid.
func (s *Store) Profile(zid string) (*models.Student, error) {
	var student models.Student
	if err := s.db.First(&student, "zid = ?", zid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &student, nil
}

// SuspendedProfile returns the quarantined account for zid.
func (s *Store) SuspendedProfile(zid string) (*models.SuspendedStudent, error) {
	var student models.SuspendedStudent
	if err := s.db.First(&student, "zid = ?", zid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSuspended
		}
		return nil, fmt.Errorf("failed to load suspended profile: %w", err)
	}
	return &student, nil
}

// PendingProfile returns the unconfirmed registration for zid.
func (s *Store) PendingProfile(zid string) (*models.PendingStudent, error) {
	var pending models.PendingStudent
	if err := s.db.First(&pending, "zid = ?", zid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingNotFound
		}
		return nil, fmt.Errorf("failed to load pending registration: %w", err)
	}
	return &pending, nil
}

// IsSuspended reports whether zid currently sits in the quarantine table.
// With fail-open enabled a storage error counts as active.
func (s *Store) IsSuspended(zid string) (bool, error) {
	var count int64
	err := s.db.Model(&models.SuspendedStudent{}).Where("zid = ?", zid).Count(&count).Error
	if err != nil {
		if s.suspendFailOpen {
			slog.Warn("suspension check failed, treating as active", "zid", zid, "error", err)
			return false, nil
		}
		return false, fmt.Errorf("suspension check failed: %w", err)
	}
	return count > 0, nil
}

// ZIDExists reports whether zid is taken by an active, suspended or pending
// account.
func (s *Store) ZIDExists(zid string) (bool, error) {
	for _, model := range []interface{}{
		&models.Student{}, &models.SuspendedStudent{}, &models.PendingStudent{},
	} {
		var count int64
		if err := s.db.Model(model).Where("zid = ?", zid).Count(&count).Error; err != nil {
			return false, fmt.Errorf("zid lookup failed: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// UpdateProfile persists all columns of an active account.
func (s *Store) UpdateProfile(student *models.Student) error {
	if err := s.db.Save(student).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// SetAvatar records the relative avatar path for zid.
func (s *Store) SetAvatar(zid, relPath string) error {
	result := s.db.Model(&models.Student{}).Where("zid = ?", zid).
		Update("profile_img", relPath)
	if result.Error != nil {
		return fmt.Errorf("failed to set avatar: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}
