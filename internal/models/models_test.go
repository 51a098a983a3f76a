package models

import (
	"testing"
)

func TestClient_FullAddress(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		want   string
	}{
		{
			name:   "full address",
			client: Client{Rua: "Rua A", Numero: "10", Bairro: "Centro"},
			want:   "Rua A, nº 10, Centro",
		},
		{
			name:   "no bairro",
			client: Client{Rua: "Rua A", Numero: "10"},
			want:   "Rua A, nº 10",
		},
		{
			name:   "complemento is not part of the address line",
			client: Client{Rua: "Rua A", Numero: "10", Complemento: "Fundos"},
			want:   "Rua A, nº 10",
		},
		{
			name:   "empty",
			client: Client{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.client.FullAddress(); got != tt.want {
				t.Errorf("FullAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []Status{"", "cancel", "CONCLUIDO", "arquivado"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestStatus_Label(t *testing.T) {
	tests := []struct {
		status Status
		lang   string
		want   string
	}{
		{StatusPendente, "pt", "Pendente"},
		{StatusEmAndamento, "pt", "Em Andamento"},
		{StatusConcluido, "pt", "Concluído"},
		{StatusCancelado, "en", "Cancelled"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status)+"/"+tt.lang, func(t *testing.T) {
			if got := tt.status.Label(tt.lang); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServiceOrder_Totals(t *testing.T) {
	o := &ServiceOrder{ValorServicos: 100, Desconto: 20, ValorTotal: 80}
	if got := o.ComputedTotal(); got != 80 {
		t.Errorf("ComputedTotal() = %f, want 80", got)
	}
	if !o.TotalConsistent() {
		t.Errorf("expected consistent total")
	}
	o.ValorTotal = 100
	if o.TotalConsistent() {
		t.Errorf("expected inconsistent total")
	}
}

func TestServiceOrder_HasEquipment(t *testing.T) {
	if (&ServiceOrder{}).HasEquipment() {
		t.Errorf("empty order should have no equipment")
	}
	if !(&ServiceOrder{EquipamentoSerie: "SN123"}).HasEquipment() {
		t.Errorf("serial alone counts as equipment")
	}
}

func TestUpdateFrom(t *testing.T) {
	o := ServiceOrder{ID: 7, ClientID: 3, NumeroOS: "2501-0001", DataServico: "2025-01-15", ValorServicos: 50, ValorTotal: 50, GarantiaDias: 90, Status: StatusConcluido}
	u := UpdateFrom(o)
	if u.ID != 7 || u.DataServico != "2025-01-15" || u.ValorTotal != 50 || u.GarantiaDias != 90 {
		t.Errorf("unexpected update %+v", u)
	}
}

func TestServiceOrderWithClient_ClientAddress(t *testing.T) {
	o := &ServiceOrderWithClient{ClientRua: "Rua B", ClientNumero: "22"}
	if got := o.ClientAddress(); got != "Rua B, nº 22" {
		t.Errorf("ClientAddress() = %q", got)
	}
}
