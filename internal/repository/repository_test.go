package repository

import (
	"context"
	"testing"

	"github.com/diewo77/oficina/internal/config"
	store "github.com/diewo77/oficina/internal/db"
	"github.com/diewo77/oficina/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := store.OpenAndMigrate(config.DatabaseConfig{Path: t.Name(), InMemory: true}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(gdb) })
	return gdb
}

func setupRepos(t *testing.T) (*ClientRepository, *ServiceOrderRepository) {
	gdb := setupDB(t)
	return NewClientRepository(gdb), NewServiceOrderRepository(gdb)
}

func newClient(nome string) models.NewClient {
	return models.NewClient{Nome: nome, Telefone: "11999999999", Rua: "Rua A", Numero: "10"}
}

func newOrder(clientID uint, numero, data string) models.NewServiceOrder {
	return models.NewServiceOrder{
		ClientID:      clientID,
		NumeroOS:      numero,
		DataServico:   data,
		ValorServicos: 150,
		ValorTotal:    150,
	}
}

func mustCreateClient(t *testing.T, r *ClientRepository, nome string) uint {
	t.Helper()
	id, err := r.Create(context.Background(), newClient(nome))
	require.NoError(t, err)
	return id
}

func mustCreateOrder(t *testing.T, r *ServiceOrderRepository, in models.NewServiceOrder) uint {
	t.Helper()
	id, err := r.Create(context.Background(), in)
	require.NoError(t, err)
	return id
}
