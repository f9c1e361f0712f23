package services

import (
	"errors"

	"github.com/yunqiuxu/unswtalk/internal/models"
	"github.com/yunqiuxu/unswtalk/internal/social"
	"github.com/yunqiuxu/unswtalk/internal/store"
)

var ErrSelfFriend = errors.New("cannot befriend yourself")

// FriendService exposes friend lists, edge mutation and ranked
// suggestions.
type FriendService struct {
	store  *store.Store
	social *social.Service
}

func NewFriendService(st *store.Store, soc *social.Service) *FriendService {
	return &FriendService{store: st, social: soc}
}

// Friends returns the visible friends of zid with their profiles attached.
func (s *FriendService) Friends(zid string) ([]models.Student, error) {
	zids, err := s.social.FriendsOf(zid)
	if err != nil {
		return nil, err
	}
	return s.profiles(zids)
}

// Suggestions returns ranked friend suggestions for zid, profiles
// attached, scores withheld.
func (s *FriendService) Suggestions(zid string) ([]models.Student, error) {
	zids, err := s.social.Suggest(zid)
	if err != nil {
		return nil, err
	}
	return s.profiles(zids)
}

func (s *FriendService) Add(owner, friend string) error {
	if owner == friend {
		return ErrSelfFriend
	}
	if _, err := s.store.Profile(friend); err != nil {
		return err
	}
	return s.store.AddFriendship(owner, friend)
}

func (s *FriendService) Remove(owner, friend string) error {
	return s.store.RemoveFriendship(owner, friend)
}

func (s *FriendService) profiles(zids []string) ([]models.Student, error) {
	students := make([]models.Student, 0, len(zids))
	for _, zid := range zids {
		profile, err := s.store.Profile(zid)
		if err != nil {
			return nil, err
		}
		students = append(students, *profile)
	}
	return students, nil
}
