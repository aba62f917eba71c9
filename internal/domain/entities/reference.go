package entities

import "strings"

// Reference tables (CLIENTES, PECAS, USERS) are maintained outside this
// service and are read-only here.

type Client struct {
	Code        string `json:"codigo"`
	Name        string `json:"nome"`
	Address     string `json:"endereco"`
	Phone       string `json:"telefone"`
	Email       string `json:"email"`
	Responsible string `json:"responsavel"`
	Active      string `json:"ativo"`
}

// Part is one catalog entry. ExtraFields is the comma-separated, ordered list
// of additional field names a request for this part must capture (e.g. a
// serial number or cabin position).

type Part struct {
	Code        string `json:"codigo"`
	Description string `json:"descricao"`
	Category    string `json:"categoria"`
	ExtraFields string `json:"campos_extras"`
	Active      string `json:"ativo"`
}

// ExtraFieldNames returns the declared extra field names in order, with
// surrounding whitespace trimmed and empty entries dropped.
func (p Part) ExtraFieldNames() []string {
	if strings.TrimSpace(p.ExtraFields) == "" {
		return nil
	}
	parts := strings.Split(p.ExtraFields, ",")
	names := make([]string, 0, len(parts))
	for _, raw := range parts {
		if name := strings.TrimSpace(raw); name != "" {
			names = append(names, name)
		}
	}
	return names
}

type Role string

const (
	RoleTecnico    Role = "TECNICO"
	RoleSupervisor Role = "SUPERVISOR"
)

// User is a login entry from the USERS table. Password is plaintext by
// decision of the upstream data owner; credential storage is not a concern of
// this service.

type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"nome"`
}

// IsActiveToken reports whether an active-flag cell marks the row as active.
// Only the truthy tokens SIM, TRUE and 1 count, case-insensitive; everything
// else (including empty) is inactive.
func IsActiveToken(v string) bool {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "SIM", "TRUE", "1":
		return true
	}
	return false
}
