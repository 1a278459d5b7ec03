package request

import "strings"

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CustomerRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r CustomerRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}
