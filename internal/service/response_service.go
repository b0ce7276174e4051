package service

import "travel_planner/internal/models"

type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// ProfileUpdate carries optional account changes; nil means unchanged.
type ProfileUpdate struct {
	DisplayName *string
	Password    *string
}
