package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/yunqiuxu/unswtalk/internal/models"
	"gorm.io/gorm"
)

// PostsBy returns all posts authored by zid, unordered. Ordering belongs to
// the feed assembler, which merges posts across authors first.
func (s *Store) PostsBy(zid string) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Where("zid = ?", zid).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	return posts, nil
}

func (s *Store) PostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return &post, nil
}

func (s *Store) CreatePost(zid, message string) (*models.Post, error) {
	post := models.Post{
		ZID:     zid,
		Time:    time.Now().Format(models.TimeLayout),
		Message: message,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

// DeletePost removes a post only if zid owns it.
func (s *Store) DeletePost(id uint, zid string) error {
	result := s.db.Where("id = ? AND zid = ?", id, zid).Delete(&models.Post{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *Store) CommentsFor(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	return comments, nil
}

func (s *Store) CreateComment(postID uint, zid, message string) (*models.Comment, error) {
	comment := models.Comment{
		PostID:  postID,
		ZID:     zid,
		Time:    time.Now().Format(models.TimeLayout),
		Message: message,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

func (s *Store) DeleteComment(id uint, zid string) error {
	result := s.db.Where("id = ? AND zid = ?", id, zid).Delete(&models.Comment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *Store) RepliesFor(commentID uint) ([]models.Reply, error) {
	var replies []models.Reply
	if err := s.db.Where("comment_id = ?", commentID).Find(&replies).Error; err != nil {
		return nil, fmt.Errorf("failed to load replies: %w", err)
	}
	return replies, nil
}

func (s *Store) CreateReply(commentID uint, zid, message string) (*models.Reply, error) {
	reply := models.Reply{
		CommentID: commentID,
		ZID:       zid,
		Time:      time.Now().Format(models.TimeLayout),
		Message:   message,
	}
	if err := s.db.Create(&reply).Error; err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}
	return &reply, nil
}

func (s *Store) DeleteReply(id uint, zid string) error {
	result := s.db.Where("id = ? AND zid = ?", id, zid).Delete(&models.Reply{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReplyNotFound
	}
	return nil
}

// SearchStudents matches active students by name substring or exact zid.
// Suspension filtering happens in the feed assembler.
func (s *Store) SearchStudents(keyword string) ([]models.Student, error) {
	var students []models.Student
	pattern := "%" + keyword + "%"
	err := s.db.Where("full_name LIKE ? OR zid = ?", pattern, keyword).
		Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("student search failed: %w", err)
	}
	return students, nil
}

// SearchPosts matches posts by message substring, unordered.
func (s *Store) SearchPosts(keyword string) ([]models.Post, error) {
	var posts []models.Post
	pattern := "%" + keyword + "%"
	if err := s.db.Where("message LIKE ?", pattern).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("post search failed: %w", err)
	}
	return posts, nil
}
