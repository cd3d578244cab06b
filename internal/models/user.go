package models

import (
	"time"
)

type Role string
type SubRole string
type AuthProvider string

const (
	RoleSuperAdmin      Role = "super_admin"
	RoleAdmin           Role = "admin"
	RoleSponsorAdmin    Role = "sponsor_admin"
	RoleSupplierAdmin   Role = "supplier_admin"
	RolePartnerAdmin    Role = "partner_admin"
	RoleFreelancerAdmin Role = "freelancer_admin"
	RoleUserAdmin       Role = "user_admin"

	SubRoleNewStar      SubRole = "new_star"
	SubRoleCriticStar   SubRole = "critic_star"
	SubRoleCriticMaster SubRole = "critic_master"

	AuthProviderEmail  AuthProvider = "email"
	AuthProviderGoogle AuthProvider = "google"
)

// ValidRole reports whether role is one of the closed set of roles. Roles
// are a closed enum; handlers must never compare against ad-hoc strings.
func ValidRole(role Role) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleSponsorAdmin, RoleSupplierAdmin,
		RolePartnerAdmin, RoleFreelancerAdmin, RoleUserAdmin:
		return true
	}
	return false
}

// ValidSubRole reports whether subRole is one of the known UI tiers.
// Sub-roles gate UI feature visibility only and carry no server-side
// authorization weight.
func ValidSubRole(subRole SubRole) bool {
	switch subRole {
	case SubRoleNewStar, SubRoleCriticStar, SubRoleCriticMaster:
		return true
	}
	return false
}

type User struct {
	UID          string       `json:"uid" firestore:"uid"`
	Email        string       `json:"email" firestore:"email" validate:"required,email"`
	DisplayName  string       `json:"display_name" firestore:"display_name" validate:"required,min=2,max=100"`
	Password     string       `json:"-" firestore:"password"`
	PhotoURL     string       `json:"photo_url" firestore:"photo_url"`
	Role         Role         `json:"role" firestore:"role" validate:"required"`
	SubRole      SubRole      `json:"sub_role" firestore:"sub_role"`
	AuthProvider AuthProvider `json:"auth_provider" firestore:"auth_provider"`
	SocialID     string       `json:"social_id,omitempty" firestore:"social_id"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty" firestore:"last_login_at"`
	CreatedAt    time.Time    `json:"created_at" firestore:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" firestore:"updated_at"`
}
