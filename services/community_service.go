package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/models"
	"github.com/saini-nikhil/MealMaster/utils"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("community post not found")

type CommunityService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewCommunityService(hub *RealtimeHub) *CommunityService {
	return &CommunityService{db: config.DB, hub: hub}
}

func NewCommunityServiceWithDB(db *gorm.DB, hub *RealtimeHub) *CommunityService {
	return &CommunityService{db: db, hub: hub}
}

type PostInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	CookingTime  string `json:"cooking_time"`
	Servings     string `json:"servings"`
	ImageBase64  string `json:"image_base64"`
}

func (s *CommunityService) CreatePost(user *models.User, in PostInput) (*models.CommunityPost, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.New("title is required")
	}

	var imageURL string
	if in.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(in.ImageBase64, "recipe-images")
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
	}

	author := user.Name
	if author == "" {
		author = "Anonymous"
	}

	post := &models.CommunityPost{
		UserID:       user.ID,
		Author:       author,
		Title:        in.Title,
		Description:  in.Description,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		ImageURL:     imageURL,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(user.ID, "community.posted", map[string]any{"post_id": post.ID})
	}
	return post, nil
}

func (s *CommunityService) ListPosts() ([]models.CommunityPost, error) {
	var posts []models.CommunityPost
	err := s.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// AddComment appends to the post's embedded comment list.
func (s *CommunityService) AddComment(user *models.User, postID uint, content string) (*models.CommunityPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("comment content is required")
	}

	var post models.CommunityPost
	err := s.db.First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	author := user.Name
	if author == "" {
		author = "Anonymous"
	}
	post.Comments = append(post.Comments, models.Comment{
		UserID:    user.ID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
	})

	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// SavePost bumps the post's save counter and records the post on the
// saving user.
func (s *CommunityService) SavePost(user *models.User, postID uint) error {
	var post models.CommunityPost
	err := s.db.First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}

	for _, id := range user.SavedPosts {
		if id == postID {
			return nil // already saved
		}
	}

	post.Saves++
	if err := s.db.Save(&post).Error; err != nil {
		return err
	}

	user.SavedPosts = append(user.SavedPosts, postID)
	return s.db.Save(user).Error
}
