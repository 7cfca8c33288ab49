package services

import (
	"errors"
	"strings"

	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/models"
)

type FeedbackInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitFeedback stores feedback; userID is nil for anonymous visitors.
func SubmitFeedback(userID *uint, input FeedbackInput) (*models.Feedback, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, errors.New("name and message are required")
	}

	fb := models.Feedback{
		UserID:  userID,
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Message: strings.TrimSpace(input.Message),
		Status:  models.FeedbackPending,
	}
	if err := config.DB.Create(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func ListFeedback(status string, limit, offset int) ([]models.Feedback, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var feedback []models.Feedback
	q := config.DB.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&feedback).Error
	return feedback, err
}

func RespondToFeedback(id uint, response string) (*models.Feedback, error) {
	if strings.TrimSpace(response) == "" {
		return nil, errors.New("response is required")
	}

	var fb models.Feedback
	if err := config.DB.First(&fb, id).Error; err != nil {
		return nil, err
	}

	fb.AdminResponse = response
	fb.Status = models.FeedbackResponded
	if err := config.DB.Save(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func DeleteFeedback(id uint) error {
	return config.DB.Unscoped().Delete(&models.Feedback{}, id).Error
}
