package store

import (
	"fmt"

	"github.com/yunqiuxu/unswtalk/internal/models"
	"gorm.io/gorm"
)

// CreatePending stages a registration until its confirmation code comes
// back.
func (s *Store) CreatePending(pending *models.PendingStudent) error {
	if err := s.db.Create(pending).Error; err != nil {
		return fmt.Errorf("failed to stage registration: %w", err)
	}
	return nil
}

// ConfirmPending moves a pending registration into the student table. The
// delete and insert ride the same transaction so a crash cannot leave the
// zid in both tables or neither.
func (s *Store) ConfirmPending(zid string) (*models.Student, error) {
	pending, err := s.PendingProfile(zid)
	if err != nil {
		return nil, err
	}

	student := models.Student{
		ZID:           pending.ZID,
		Email:         pending.Email,
		Password:      pending.Password,
		FullName:      pending.FullName,
		Birthday:      pending.Birthday,
		Program:       pending.Program,
		HomeSuburb:    pending.HomeSuburb,
		HomeLongitude: pending.HomeLongitude,
		HomeLatitude:  pending.HomeLatitude,
		ProfileImg:    pending.ProfileImg,
		ProfileText:   pending.ProfileText,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PendingStudent{}, "zid = ?", zid).Error; err != nil {
			return err
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to confirm registration: %w", err)
	}
	return &student, nil
}

// Suspend moves an active account into quarantine. Friendships, posts,
// comments and replies stay behind and are hidden at read time.
func (s *Store) Suspend(zid string) error {
	student, err := s.Profile(zid)
	if err != nil {
		return err
	}

	suspended := models.SuspendedStudent{
		ZID:           student.ZID,
		Email:         student.Email,
		Password:      student.Password,
		FullName:      student.FullName,
		Birthday:      student.Birthday,
		Program:       student.Program,
		HomeSuburb:    student.HomeSuburb,
		HomeLongitude: student.HomeLongitude,
		HomeLatitude:  student.HomeLatitude,
		ProfileImg:    student.ProfileImg,
		ProfileText:   student.ProfileText,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Student{}, "zid = ?", zid).Error; err != nil {
			return err
		}
		return tx.Create(&suspended).Error
	})
	if err != nil {
		return fmt.Errorf("failed to suspend account: %w", err)
	}
	return nil
}

// Activate moves a quarantined account back into the student table.
func (s *Store) Activate(zid string) error {
	suspended, err := s.SuspendedProfile(zid)
	if err != nil {
		return err
	}

	student := models.Student{
		ZID:           suspended.ZID,
		Email:         suspended.Email,
		Password:      suspended.Password,
		FullName:      suspended.FullName,
		Birthday:      suspended.Birthday,
		Program:       suspended.Program,
		HomeSuburb:    suspended.HomeSuburb,
		HomeLongitude: suspended.HomeLongitude,
		HomeLatitude:  suspended.HomeLatitude,
		ProfileImg:    suspended.ProfileImg,
		ProfileText:   suspended.ProfileText,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SuspendedStudent{}, "zid = ?", zid).Error; err != nil {
			return err
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return fmt.Errorf("failed to activate account: %w", err)
	}
	return nil
}

// DeleteAccount permanently removes the account and everything it owns:
// replies, comments, posts, enrollments, both directions of every
// friendship, then the student row, all in one transaction.
func (s *Store) DeleteAccount(zid string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("zid = ?", zid).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("zid = ?", zid).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("zid = ?", zid).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("zid = ?", zid).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("zid = ? OR friend_zid = ?", zid, zid).
			Delete(&models.Friendship{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Student{}, "zid = ?", zid).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
