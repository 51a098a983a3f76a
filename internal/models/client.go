package models

import "strings"

// Client represents a customer who owns the equipment being serviced.
type Client struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nome        string `gorm:"column:nome;not null" json:"nome"`
	Telefone    string `gorm:"column:telefone;not null" json:"telefone"`
	Rua         string `gorm:"column:rua;not null" json:"rua"`
	Numero      string `gorm:"column:numero;not null" json:"numero"`
	Bairro      string `gorm:"column:bairro" json:"bairro,omitempty"`
	Complemento string `gorm:"column:complemento" json:"complemento,omitempty"`
}

func (Client) TableName() string { return "clients" }

// NewClient holds the fields of a client that has not been stored yet.
type NewClient struct {
	Nome        string `json:"nome"`
	Telefone    string `json:"telefone"`
	Rua         string `json:"rua"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro,omitempty"`
	Complemento string `json:"complemento,omitempty"`
}

// FullAddress returns the formatted street address ("Rua A, nº 10, Centro").
// Complemento is left out; it is rendered on its own line by callers.
func (c *Client) FullAddress() string {
	return formatAddress(c.Rua, c.Numero, c.Bairro)
}

func formatAddress(rua, numero, bairro string) string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(rua); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(numero); s != "" {
		parts = append(parts, "nº "+s)
	}
	if s := strings.TrimSpace(bairro); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
