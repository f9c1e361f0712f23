package services

import (
	"errors"

	"github.com/yunqiuxu/unswtalk/internal/models"
	"github.com/yunqiuxu/unswtalk/internal/store"
)

var ErrEmptyMessage = errors.New("message must not be empty")

// ContentService owns post, comment and reply writes. Reads go through the
// feed assembler, which handles ordering and annotation.
type ContentService struct {
	store *store.Store
}

func NewContentService(st *store.Store) *ContentService {
	return &ContentService{store: st}
}

func (s *ContentService) CreatePost(zid, message string) (*models.Post, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return s.store.CreatePost(zid, message)
}

func (s *ContentService) DeletePost(id uint, zid string) error {
	return s.store.DeletePost(id, zid)
}

func (s *ContentService) CreateComment(postID uint, zid, message string) (*models.Comment, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if _, err := s.store.PostByID(postID); err != nil {
		return nil, err
	}
	return s.store.CreateComment(postID, zid, message)
}

func (s *ContentService) DeleteComment(id uint, zid string) error {
	return s.store.DeleteComment(id, zid)
}

func (s *ContentService) CreateReply(commentID uint, zid, message string) (*models.Reply, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return s.store.CreateReply(commentID, zid, message)
}

func (s *ContentService) DeleteReply(id uint, zid string) error {
	return s.store.DeleteReply(id, zid)
}
