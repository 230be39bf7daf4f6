package services

import (
	"errors"
	"fmt"

	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/models"
	"github.com/saini-nikhil/MealMaster/utils"
)

type ProfileInput struct {
	Name               string   `json:"name"`
	DietaryPreferences []string `json:"dietary_preferences"`
	FitnessGoal        string   `json:"fitness_goal"`
	DailyCalorieTarget float64  `json:"daily_calorie_target"`
	ProfilePicture     string   `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":                   user.ID,
		"email":                user.Email,
		"name":                 user.Name,
		"dietary_preferences":  []string(user.DietaryPreferences),
		"fitness_goal":         user.FitnessGoal,
		"daily_calorie_target": user.DailyCalorieTarget,
		"profile_picture":      user.ProfilePicture,
	}, nil
}

// UpdateUserProfile replaces the profile wholesale, the way the edit
// form submits it. The avatar goes through the validated S3 upload.
func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return errors.New("user not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	user.DietaryPreferences = input.DietaryPreferences
	user.FitnessGoal = input.FitnessGoal
	user.DailyCalorieTarget = input.DailyCalorieTarget

	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profile-pictures/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}
