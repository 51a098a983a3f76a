package models

import (
	"math"

	"github.com/diewo77/oficina/i18n"
)

// Status represents the lifecycle state of a service order.
// Any status may move to any other one; none is terminal.
type Status string

const (
	StatusPendente    Status = "pendente"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluido   Status = "concluido"
	StatusCancelado   Status = "cancelado"
)

// Statuses returns every known status in display order.
func Statuses() []Status {
	return []Status{StatusPendente, StatusEmAndamento, StatusConcluido, StatusCancelado}
}

// StatusValues returns the known statuses as plain strings.
func StatusValues() []string {
	out := make([]string, 0, 4)
	for _, s := range Statuses() {
		out = append(out, string(s))
	}
	return out
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

// Label returns the translated display name of s.
func (s Status) Label(lang string) string {
	return i18n.T(lang, "status."+string(s))
}

// ServiceOrder represents one repair job tied to exactly one client.
type ServiceOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Write-once after creation
	ClientID uint   `gorm:"column:client_id;not null;index" json:"client_id"`
	NumeroOS string `gorm:"column:numero_os;not null" json:"numero_os"`

	// ISO date (YYYY-MM-DD)
	DataServico string `gorm:"column:data_servico;not null" json:"data_servico"`

	// Equipment
	EquipamentoTipo   string `gorm:"column:equipamento_tipo" json:"equipamento_tipo,omitempty"`
	EquipamentoMarca  string `gorm:"column:equipamento_marca" json:"equipamento_marca,omitempty"`
	EquipamentoModelo string `gorm:"column:equipamento_modelo" json:"equipamento_modelo,omitempty"`
	EquipamentoSerie  string `gorm:"column:equipamento_serie" json:"equipamento_serie,omitempty"`

	ServicosRealizados string `gorm:"column:servicos_realizados" json:"servicos_realizados,omitempty"`

	// Values. ValorTotal is computed by the caller and stored as given.
	ValorServicos float64 `gorm:"column:valor_servicos;not null;default:0" json:"valor_servicos"`
	Desconto      float64 `gorm:"column:desconto;not null;default:0" json:"desconto"`
	ValorTotal    float64 `gorm:"column:valor_total;not null;default:0" json:"valor_total"`

	Observacoes  string `gorm:"column:observacoes" json:"observacoes,omitempty"`
	GarantiaDias int    `gorm:"column:garantia_dias;default:0" json:"garantia_dias"`
	Status       Status `gorm:"column:status;type:text;not null;default:'pendente'" json:"status"`
}

func (ServiceOrder) TableName() string { return "service_orders" }

// ComputedTotal returns ValorServicos minus Desconto.
func (o *ServiceOrder) ComputedTotal() float64 {
	return o.ValorServicos - o.Desconto
}

// TotalConsistent reports whether the stored total matches the derived one
// to the cent.
func (o *ServiceOrder) TotalConsistent() bool {
	return math.Abs(o.ValorTotal-o.ComputedTotal()) < 0.005
}

// HasEquipment reports whether any equipment descriptor is filled in.
func (o *ServiceOrder) HasEquipment() bool {
	return o.EquipamentoTipo != "" || o.EquipamentoMarca != "" ||
		o.EquipamentoModelo != "" || o.EquipamentoSerie != ""
}

// NewServiceOrder holds the fields of an order that has not been stored yet.
// Status is absent: new orders always start as pendente.
type NewServiceOrder struct {
	ClientID           uint    `json:"client_id"`
	NumeroOS           string  `json:"numero_os"`
	DataServico        string  `json:"data_servico"`
	EquipamentoTipo    string  `json:"equipamento_tipo,omitempty"`
	EquipamentoMarca   string  `json:"equipamento_marca,omitempty"`
	EquipamentoModelo  string  `json:"equipamento_modelo,omitempty"`
	EquipamentoSerie   string  `json:"equipamento_serie,omitempty"`
	ServicosRealizados string  `json:"servicos_realizados,omitempty"`
	ValorServicos      float64 `json:"valor_servicos"`
	Desconto           float64 `json:"desconto"`
	ValorTotal         float64 `json:"valor_total"`
	Observacoes        string  `json:"observacoes,omitempty"`
	GarantiaDias       int     `json:"garantia_dias"`
}

// ServiceOrderUpdate carries the mutable fields of an order.
// ClientID, NumeroOS and Status cannot be changed through it.
type ServiceOrderUpdate struct {
	ID                 uint    `json:"id"`
	DataServico        string  `json:"data_servico"`
	EquipamentoTipo    string  `json:"equipamento_tipo,omitempty"`
	EquipamentoMarca   string  `json:"equipamento_marca,omitempty"`
	EquipamentoModelo  string  `json:"equipamento_modelo,omitempty"`
	EquipamentoSerie   string  `json:"equipamento_serie,omitempty"`
	ServicosRealizados string  `json:"servicos_realizados,omitempty"`
	ValorServicos      float64 `json:"valor_servicos"`
	Desconto           float64 `json:"desconto"`
	ValorTotal         float64 `json:"valor_total"`
	Observacoes        string  `json:"observacoes,omitempty"`
	GarantiaDias       int     `json:"garantia_dias"`
}

// UpdateFrom returns the editable view of an existing order.
func UpdateFrom(o ServiceOrder) ServiceOrderUpdate {
	return ServiceOrderUpdate{
		ID:                 o.ID,
		DataServico:        o.DataServico,
		EquipamentoTipo:    o.EquipamentoTipo,
		EquipamentoMarca:   o.EquipamentoMarca,
		EquipamentoModelo:  o.EquipamentoModelo,
		EquipamentoSerie:   o.EquipamentoSerie,
		ServicosRealizados: o.ServicosRealizados,
		ValorServicos:      o.ValorServicos,
		Desconto:           o.Desconto,
		ValorTotal:         o.ValorTotal,
		Observacoes:        o.Observacoes,
		GarantiaDias:       o.GarantiaDias,
	}
}

// ServiceOrderWithClient is a service order joined with its client's display
// fields. Address fields are only filled by detail fetches. It is never stored.
type ServiceOrderWithClient struct {
	ServiceOrder

	ClientNome        string `gorm:"column:client_nome" json:"client_nome"`
	ClientTelefone    string `gorm:"column:client_telefone" json:"client_telefone"`
	ClientRua         string `gorm:"column:client_rua" json:"client_rua,omitempty"`
	ClientNumero      string `gorm:"column:client_numero" json:"client_numero,omitempty"`
	ClientBairro      string `gorm:"column:client_bairro" json:"client_bairro,omitempty"`
	ClientComplemento string `gorm:"column:client_complemento" json:"client_complemento,omitempty"`
}

// ClientAddress returns the formatted client street address.
func (o *ServiceOrderWithClient) ClientAddress() string {
	return formatAddress(o.ClientRua, o.ClientNumero, o.ClientBairro)
}
