package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/models"
	"github.com/Bishesh15/smartpantry/utils"
)

var usernameAllowed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// ValidUsername enforces 3-20 chars of letters, digits and underscore.
func ValidUsername(username string) bool {
	if len(username) < 3 || len(username) > 20 {
		return false
	}
	for _, r := range username {
		if !strings.ContainsRune(usernameAllowed, r) {
			return false
		}
	}
	return true
}

func RegisterUser(username, email, password string) error {
	if !ValidUsername(username) {
		return errors.New("username must be 3-20 characters (letters, numbers, underscore)")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	var count int64
	config.DB.Model(&models.User{}).Where("username = ? OR email = ?", username, email).Count(&count)
	if count > 0 {
		return errors.New("username or email already exists")
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}

	return token, nil
}
