package dto

import userDto "meetbook/modules/user/dto"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	// Partner accounts may declare availability and be booked.
	IsPartner bool `json:"is_partner"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string                  `json:"token"`
	User  userDto.ProfileResponse `json:"user"`
}
