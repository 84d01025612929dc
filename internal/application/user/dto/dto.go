package dto

// TipoDTO mirrors the StatusUsuario reference entry attached to a user.
type TipoDTO struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// UserDTO is the outward-facing user shape. Senha never appears here.
type UserDTO struct {
	ID    uint    `json:"id"`
	UUID  string  `json:"uuid"`
	Nome  string  `json:"nome"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
	Tipo  TipoDTO `json:"tipo"`
}
