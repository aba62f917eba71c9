package request

import "strings"

type LoginRequest struct {
	Username string `json:"usuario" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

func (r LoginRequest) ResolveUsername() string {
	return strings.TrimSpace(r.Username)
}
