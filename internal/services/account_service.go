package services

import (
	"errors"

	"github.com/yunqiuxu/unswtalk/internal/dto"
	"github.com/yunqiuxu/unswtalk/internal/feed"
	"github.com/yunqiuxu/unswtalk/internal/models"
	"github.com/yunqiuxu/unswtalk/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var ErrWrongOldPassword = errors.New("old password does not match")

// AccountService covers the self-service profile lifecycle: edits, avatar,
// suspension, reactivation and permanent deletion.
type AccountService struct {
	store     *store.Store
	assembler *feed.Assembler
}

func NewAccountService(st *store.Store, assembler *feed.Assembler) *AccountService {
	return &AccountService{store: st, assembler: assembler}
}

func (s *AccountService) Profile(zid string) (*models.Student, error) {
	return s.store.Profile(zid)
}

// EditProfile applies the submitted fields to zid's profile. Empty fields
// keep their current value. Changing the password requires the old one;
// a wrong old password is an error rather than a silent keep. Profile text
// is display-transformed before storage.
func (s *AccountService) EditProfile(zid string, req *dto.EditProfileRequest) (*models.Student, error) {
	student, err := s.store.Profile(zid)
	if err != nil {
		return nil, err
	}

	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword(
			[]byte(student.Password), []byte(req.OldPassword)); err != nil {
			return nil, ErrWrongOldPassword
		}
		if req.NewPassword != req.NewPasswordConfirm {
			return nil, ErrInvalidPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		student.Password = string(hash)
	}

	if req.Email != "" {
		student.Email = req.Email
	}
	if req.FullName != "" {
		student.FullName = req.FullName
	}
	if req.Birthday != "" {
		student.Birthday = req.Birthday
	}
	if req.HomeSuburb != "" {
		student.HomeSuburb = req.HomeSuburb
	}
	if req.Program != "" {
		student.Program = req.Program
	}
	if req.ProfileText != "" {
		student.ProfileText = s.assembler.TransformMessage(req.ProfileText)
	}

	if err := s.store.UpdateProfile(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *AccountService) SetAvatar(zid, relPath string) error {
	return s.store.SetAvatar(zid, relPath)
}

func (s *AccountService) Suspend(zid string) error {
	return s.store.Suspend(zid)
}

func (s *AccountService) Activate(zid string) error {
	return s.store.Activate(zid)
}

func (s *AccountService) Delete(zid string) error {
	return s.store.DeleteAccount(zid)
}
