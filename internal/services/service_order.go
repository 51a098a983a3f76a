package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/diewo77/oficina/internal/models"
	"github.com/diewo77/oficina/internal/repository"
	"github.com/diewo77/oficina/internal/share"
	"github.com/diewo77/oficina/pdf"
)

// OrderStore is the part of the service order repository the service
// reads from.
type OrderStore interface {
	GetByID(ctx context.Context, id uint) (*models.ServiceOrderWithClient, error)
	CountByStatus(ctx context.Context) (map[models.Status]int64, error)
	MaxNumberSuffix(ctx context.Context, prefix string) (int64, error)
}

type OrderService struct {
	orders   OrderStore
	areaCode string
	now      func() time.Time
}

func NewOrderService(orders OrderStore, areaCode string) *OrderService {
	return &OrderService{orders: orders, areaCode: areaCode, now: time.Now}
}

// ComputeTotal returns the amount due after the discount, rounded to cents.
func ComputeTotal(valorServicos, desconto float64) float64 {
	return math.Round((valorServicos-desconto)*100) / 100
}

// NextNumber returns the next order number for the month of date.
// Format: YYMM-NNNN (e.g., 2501-0001)
func (s *OrderService) NextNumber(ctx context.Context, date time.Time) (string, error) {
	prefix := date.Format("0601") + "-"
	last, err := s.orders.MaxNumberSuffix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, last+1), nil
}

// Stats summarizes orders for the dashboard.
type Stats struct {
	Total    int64
	ByStatus map[models.Status]int64
}

// Stats counts orders per status. Every known status has an entry.
func (s *OrderService) Stats(ctx context.Context) (Stats, error) {
	counts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{ByStatus: make(map[models.Status]int64, len(counts))}
	for _, status := range models.Statuses() {
		st.ByStatus[status] = 0
	}
	for status, n := range counts {
		st.ByStatus[status] = n
		st.Total += n
	}
	return st, nil
}

func (s *OrderService) load(ctx context.Context, id uint) (*models.ServiceOrderWithClient, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("service order %d: %w", id, repository.ErrNotFound)
	}
	return o, nil
}

// DocumentData maps a loaded order to what the PDF renderer prints.
func DocumentData(o *models.ServiceOrderWithClient, lang string, generatedAt time.Time) pdf.ServiceOrderData {
	return pdf.ServiceOrderData{
		Number: o.NumeroOS,
		Date:   pdf.FormatDate(o.DataServico),
		Status: o.Status.Label(lang),
		Client: pdf.ClientData{
			Name:       o.ClientNome,
			Phone:      o.ClientTelefone,
			Address:    o.ClientAddress(),
			Complement: o.ClientComplemento,
		},
		Equipment: pdf.EquipmentData{
			Type:   o.EquipamentoTipo,
			Brand:  o.EquipamentoMarca,
			Model:  o.EquipamentoModelo,
			Serial: o.EquipamentoSerie,
		},
		Services:     o.ServicosRealizados,
		Subtotal:     o.ValorServicos,
		Discount:     o.Desconto,
		Total:        o.ValorTotal,
		Notes:        o.Observacoes,
		WarrantyDays: o.GarantiaDias,
		Lang:         lang,
		GeneratedAt:  generatedAt,
	}
}

// ExportPDF renders the order as a PDF document.
func (s *OrderService) ExportPDF(ctx context.Context, id uint, lang string) ([]byte, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := pdf.ServiceOrderPDF(DocumentData(o, lang, s.now()))
	if err != nil {
		return nil, fmt.Errorf("export service order %s: %w", o.NumeroOS, err)
	}
	return out, nil
}

// WhatsAppLink builds the greeting links for the order's client.
func (s *OrderService) WhatsAppLink(ctx context.Context, id uint, lang string) (share.Links, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return share.Links{}, err
	}
	return share.WhatsAppLinks(o.ClientNome, o.ClientTelefone, s.areaCode, lang)
}
