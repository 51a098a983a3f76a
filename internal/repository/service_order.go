package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/diewo77/oficina/internal/models"
	"github.com/diewo77/oficina/validation"
	"gorm.io/gorm"
)

const (
	listColumns   = "so.*, c.nome AS client_nome, c.telefone AS client_telefone"
	detailColumns = listColumns + ", c.rua AS client_rua, c.numero AS client_numero, " +
		"c.bairro AS client_bairro, c.complemento AS client_complemento"
	clientJoin = "LEFT JOIN clients c ON so.client_id = c.id"
	listOrder  = "so.data_servico DESC, so.id DESC"
)

type ServiceOrderRepository struct {
	db *gorm.DB
}

func NewServiceOrderRepository(db *gorm.DB) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db}
}

func validateAmounts(data string, valorServicos, desconto, valorTotal float64, garantia int, v validation.Violations) {
	validation.ISODate("data_servico", data, v)
	validation.NonNegativeFloat("valor_servicos", valorServicos, v)
	validation.NonNegativeFloat("desconto", desconto, v)
	validation.NonNegativeFloat("valor_total", valorTotal, v)
	validation.NonNegativeInt("garantia_dias", garantia, v)
}

// Create inserts an order as pendente and returns its id. An unknown
// client_id is rejected by the store's foreign key.
func (r *ServiceOrderRepository) Create(ctx context.Context, in models.NewServiceOrder) (uint, error) {
	v := validation.Violations{}
	validation.RequiredID("client_id", in.ClientID, v)
	validation.Required("numero_os", in.NumeroOS, v)
	validateAmounts(in.DataServico, in.ValorServicos, in.Desconto, in.ValorTotal, in.GarantiaDias, v)
	if err := invalid(v); err != nil {
		return 0, err
	}

	o := models.ServiceOrder{
		ClientID:           in.ClientID,
		NumeroOS:           in.NumeroOS,
		DataServico:        in.DataServico,
		EquipamentoTipo:    in.EquipamentoTipo,
		EquipamentoMarca:   in.EquipamentoMarca,
		EquipamentoModelo:  in.EquipamentoModelo,
		EquipamentoSerie:   in.EquipamentoSerie,
		ServicosRealizados: in.ServicosRealizados,
		ValorServicos:      in.ValorServicos,
		Desconto:           in.Desconto,
		ValorTotal:         in.ValorTotal,
		Observacoes:        in.Observacoes,
		GarantiaDias:       in.GarantiaDias,
		Status:             models.StatusPendente,
	}
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return 0, storageErr("create service order", err)
	}
	return o.ID, nil
}

func (r *ServiceOrderRepository) joined(ctx context.Context, columns string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("service_orders AS so").
		Select(columns).
		Joins(clientJoin)
}

// GetAll returns every order with its client's name and phone, newest
// service date first.
func (r *ServiceOrderRepository) GetAll(ctx context.Context) ([]models.ServiceOrderWithClient, error) {
	var out []models.ServiceOrderWithClient
	if err := r.joined(ctx, listColumns).Order(listOrder).Find(&out).Error; err != nil {
		return nil, storageErr("list service orders", err)
	}
	return out, nil
}

// SearchByStatus returns orders whose status contains the given text, so
// "cancel" finds cancelado orders and "" finds all of them.
func (r *ServiceOrderRepository) SearchByStatus(ctx context.Context, status string) ([]models.ServiceOrderWithClient, error) {
	var out []models.ServiceOrderWithClient
	err := r.joined(ctx, listColumns).
		Where(`so.status LIKE ? ESCAPE '\'`, containsPattern(status)).
		Order(listOrder).
		Find(&out).Error
	if err != nil {
		return nil, storageErr("search service orders", err)
	}
	return out, nil
}

// GetByID returns the order with the client's full contact and address, or
// nil when no row has that id.
func (r *ServiceOrderRepository) GetByID(ctx context.Context, id uint) (*models.ServiceOrderWithClient, error) {
	var o models.ServiceOrderWithClient
	res := r.joined(ctx, detailColumns).Where("so.id = ?", id).Limit(1).Find(&o)
	if res.Error != nil {
		return nil, storageErr("get service order", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &o, nil
}

// Update overwrites the mutable fields of an order. The client, the order
// number and the status are left untouched.
func (r *ServiceOrderRepository) Update(ctx context.Context, u models.ServiceOrderUpdate) error {
	v := validation.Violations{}
	validateAmounts(u.DataServico, u.ValorServicos, u.Desconto, u.ValorTotal, u.GarantiaDias, v)
	if err := invalid(v); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"data_servico":        u.DataServico,
			"equipamento_tipo":    u.EquipamentoTipo,
			"equipamento_marca":   u.EquipamentoMarca,
			"equipamento_modelo":  u.EquipamentoModelo,
			"equipamento_serie":   u.EquipamentoSerie,
			"servicos_realizados": u.ServicosRealizados,
			"valor_servicos":      u.ValorServicos,
			"desconto":            u.Desconto,
			"valor_total":         u.ValorTotal,
			"observacoes":         u.Observacoes,
			"garantia_dias":       u.GarantiaDias,
		})
	if res.Error != nil {
		return storageErr("update service order", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets the status column only. Any known status may follow
// any other.
func (r *ServiceOrderRepository) UpdateStatus(ctx context.Context, id uint, status models.Status) error {
	v := validation.Violations{}
	validation.OneOf("status", string(status), models.StatusValues(), v)
	if err := invalid(v); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return storageErr("update service order status", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ServiceOrderRepository) Remove(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ServiceOrder{})
	if res.Error != nil {
		return storageErr("remove service order", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns the number of orders per status. Statuses with no
// orders are absent from the map.
func (r *ServiceOrderRepository) CountByStatus(ctx context.Context) (map[models.Status]int64, error) {
	var rows []struct {
		Status models.Status
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storageErr("count service orders", err)
	}
	out := make(map[models.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

// MaxNumberSuffix returns the highest numeric suffix among order numbers
// starting with prefix, or 0 when there is none. Suffixes that are not
// plain digits are ignored.
func (r *ServiceOrderRepository) MaxNumberSuffix(ctx context.Context, prefix string) (int64, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&models.ServiceOrder{}).
		Where(`numero_os LIKE ? ESCAPE '\'`, prefixPattern(prefix)).
		Pluck("numero_os", &numbers).Error
	if err != nil {
		return 0, storageErr("max service order number", err)
	}
	var last int64
	for _, n := range numbers {
		suffix := strings.TrimPrefix(n, prefix)
		if suffix == "" || strings.IndexFunc(suffix, func(c rune) bool { return c < '0' || c > '9' }) >= 0 {
			continue
		}
		v, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			continue
		}
		if v > last {
			last = v
		}
	}
	return last, nil
}
