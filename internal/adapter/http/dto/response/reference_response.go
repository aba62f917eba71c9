package response

import "sistema_cvt/internal/domain/entities"

type ClientResponse struct {
	Code        string `json:"codigo"`
	Name        string `json:"nome"`
	Address     string `json:"endereco"`
	Phone       string `json:"telefone"`
	Email       string `json:"email"`
	Responsible string `json:"responsavel"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		Code:        c.Code,
		Name:        c.Name,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		Responsible: c.Responsible,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}

type PartResponse struct {
	Code        string   `json:"codigo"`
	Description string   `json:"descricao"`
	Category    string   `json:"categoria"`
	ExtraFields []string `json:"campos_extras,omitempty"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		Code:        p.Code,
		Description: p.Description,
		Category:    p.Category,
		ExtraFields: p.ExtraFieldNames(),
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}
