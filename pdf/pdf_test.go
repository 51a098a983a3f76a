package pdf

import (
	"bytes"
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := map[string]string{
		"2025-01-15": "15/01/2025",
		"2024-12-31": "31/12/2024",
		"15/01/2025": "15/01/2025",
		"":           "",
	}
	for in, want := range tests {
		if got := FormatDate(in); got != want {
			t.Fatalf("FormatDate(%q) = %q want %q", in, got, want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{150, "R$ 150,00"},
		{80.5, "R$ 80,50"},
		{1234.56, "R$ 1.234,56"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Fatalf("FormatCurrency(%v) = %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestServiceOrderPDF(t *testing.T) {
	data := ServiceOrderData{
		Number: "2501-0001",
		Date:   FormatDate("2025-01-15"),
		Status: "Concluído",
		Client: ClientData{
			Name:       "João",
			Phone:      "11999999999",
			Address:    "Rua A, nº 10, Centro",
			Complement: "Casa 2",
		},
		Equipment:    EquipmentData{Type: "Notebook", Brand: "Dell"},
		Services:     "Troca de tela\nLimpeza interna",
		Subtotal:     150,
		Discount:     20,
		Total:        130,
		Notes:        "Retirar na sexta",
		WarrantyDays: 90,
		GeneratedAt:  time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
	}
	out, err := ServiceOrderPDF(data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected a PDF document")
	}
}

func TestServiceOrderPDFMinimal(t *testing.T) {
	out, err := ServiceOrderPDF(ServiceOrderData{Number: "2501-0002", Client: ClientData{Name: "Ana"}, Lang: "en"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected output")
	}
}

func TestOrDefault(t *testing.T) {
	if got := orDefault("  ", "Não informado"); got != "Não informado" {
		t.Fatalf("got %q", got)
	}
	if got := orDefault("123", "x"); got != "123" {
		t.Fatalf("got %q", got)
	}
}
