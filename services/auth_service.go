package services

import (
	"errors"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/models"
	"github.com/saini-nikhil/MealMaster/utils"
)

type RegisterInput struct {
	Email              string   `json:"email" binding:"required,email"`
	Password           string   `json:"password" binding:"required"`
	Name               string   `json:"name" binding:"required"`
	DietaryPreferences []string `json:"dietary_preferences"`
	FitnessGoal        string   `json:"fitness_goal"`
	DailyCalorieTarget float64  `json:"daily_calorie_target"`
}

func RegisterUser(input RegisterInput) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:              input.Email,
		Password:           hashedPassword,
		Name:               input.Name,
		DietaryPreferences: input.DietaryPreferences,
		FitnessGoal:        input.FitnessGoal,
		DailyCalorieTarget: input.DailyCalorieTarget,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
