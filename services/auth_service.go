package services

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/andrewdphillips61/Vita-AI/config"
	"github.com/andrewdphillips61/Vita-AI/models"
	"github.com/andrewdphillips61/Vita-AI/utils"
)

// RegisterUser creates an unverified account and mails the confirmation
// code through SES.
func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))

	user := models.User{
		Email:      email,
		Password:   hashedPassword,
		FullName:   fullName,
		Verified:   false,
		VerifyCode: code,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	return utils.SendVerificationEmail(email, code)
}

// VerifyUser checks the mailed code and activates the account.
func VerifyUser(email, code string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return errors.New("user not found")
	}
	if user.Verified {
		return nil
	}
	if user.VerifyCode == "" || user.VerifyCode != code {
		return errors.New("invalid verification code")
	}

	user.Verified = true
	user.VerifyCode = ""
	return config.DB.Save(&user).Error
}

// AuthenticateUser validates credentials and returns a session token.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}
	if !user.Verified {
		return "", errors.New("account not verified")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	return token, nil
}
