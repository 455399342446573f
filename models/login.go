package models

import "SecureEHealth/role"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Role        role.Role `json:"role"`
	Name        string    `json:"name"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
