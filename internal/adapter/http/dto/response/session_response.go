package response

import "sistema_cvt/internal/domain/entities"

type SessionResponse struct {
	Token    string `json:"token"`
	Username string `json:"usuario"`
	Name     string `json:"nome"`
	Role     string `json:"perfil"`
}

func FromSession(token string, user entities.User) SessionResponse {
	return SessionResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
		Role:     string(user.Role),
	}
}
