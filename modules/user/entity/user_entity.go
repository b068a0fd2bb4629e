package entity

import (
	"meetbook/core/constants"
	coreEntity "meetbook/core/entity"
)

// User is an account row. Partners (hosts) may declare availability and be
// booked; members may only book.
type User struct {
	Email        string  `db:"email" json:"email"`
	PasswordHash string  `db:"password_hash" json:"-"`
	Name         *string `db:"name" json:"name,omitempty"`
	PhotoURL     *string `db:"photo_url" json:"photo_url,omitempty"`
	Role         string  `db:"role" json:"role"`
	ReferralCode string  `db:"referral_code" json:"referral_code"`
	coreEntity.BaseEntity
}

func (u *User) IsPartner() bool {
	return u.Role == constants.RolePartner
}

// Photo returns the uploaded photo URL or the default placeholder.
func (u *User) Photo() string {
	if u.PhotoURL != nil && *u.PhotoURL != "" {
		return *u.PhotoURL
	}
	return constants.DefaultUserPhoto
}
