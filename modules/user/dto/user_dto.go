package dto

import (
	"meetbook/modules/user/entity"
)

// UserSummary is the compact user shape embedded in booking and calendar
// responses.
type UserSummary struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Photo string  `json:"photo"`
}

type ProfileResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         *string `json:"name"`
	Photo        string  `json:"photo"`
	Role         string  `json:"role"`
	ReferralCode string  `json:"referral_code"`
}

type UploadPhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}

func ToUserSummary(u *entity.User) UserSummary {
	return UserSummary{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Photo: u.Photo(),
	}
}

func ToProfileResponse(u *entity.User) *ProfileResponse {
	return &ProfileResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		Photo:        u.Photo(),
		Role:         u.Role,
		ReferralCode: u.ReferralCode,
	}
}
