package utils

import (
	"dr-portal/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}
