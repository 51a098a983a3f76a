package repository

import (
	"context"

	"github.com/diewo77/oficina/internal/models"
	"github.com/diewo77/oficina/validation"
	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func validateClient(nome, telefone, rua, numero string) error {
	v := validation.Violations{}
	validation.Required("nome", nome, v)
	validation.Required("telefone", telefone, v)
	validation.Required("rua", rua, v)
	validation.Required("numero", numero, v)
	return invalid(v)
}

// Create inserts a client and returns the id assigned by the store.
func (r *ClientRepository) Create(ctx context.Context, in models.NewClient) (uint, error) {
	if err := validateClient(in.Nome, in.Telefone, in.Rua, in.Numero); err != nil {
		return 0, err
	}
	c := models.Client{
		Nome:        in.Nome,
		Telefone:    in.Telefone,
		Rua:         in.Rua,
		Numero:      in.Numero,
		Bairro:      in.Bairro,
		Complemento: in.Complemento,
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, storageErr("create client", err)
	}
	return c.ID, nil
}

// SearchByName returns clients whose name contains query, in insertion
// order. Matching is ASCII case-insensitive; an empty query returns all.
func (r *ClientRepository) SearchByName(ctx context.Context, query string) ([]models.Client, error) {
	var out []models.Client
	err := r.db.WithContext(ctx).
		Where(`nome LIKE ? ESCAPE '\'`, containsPattern(query)).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storageErr("search clients", err)
	}
	return out, nil
}

// GetByID returns the client or nil when no row has that id.
func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	res := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&c)
	if res.Error != nil {
		return nil, storageErr("get client", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &c, nil
}

// Update overwrites every field of the client with the same id.
// Blank optional fields are stored blank.
func (r *ClientRepository) Update(ctx context.Context, c models.Client) error {
	if err := validateClient(c.Nome, c.Telefone, c.Rua, c.Numero); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"nome":        c.Nome,
			"telefone":    c.Telefone,
			"rua":         c.Rua,
			"numero":      c.Numero,
			"bairro":      c.Bairro,
			"complemento": c.Complemento,
		})
	if res.Error != nil {
		return storageErr("update client", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove deletes the client. Its service orders go with it through the
// ON DELETE CASCADE foreign key.
func (r *ClientRepository) Remove(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Client{})
	if res.Error != nil {
		return storageErr("remove client", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
