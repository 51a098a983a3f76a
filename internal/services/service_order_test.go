package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diewo77/oficina/internal/config"
	store "github.com/diewo77/oficina/internal/db"
	"github.com/diewo77/oficina/internal/models"
	"github.com/diewo77/oficina/internal/repository"
	"github.com/diewo77/oficina/internal/share"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*repository.ClientRepository, *repository.ServiceOrderRepository, *OrderService) {
	t.Helper()
	gdb, err := store.OpenAndMigrate(config.DatabaseConfig{Path: t.Name(), InMemory: true}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(gdb) })
	orders := repository.NewServiceOrderRepository(gdb)
	svc := NewOrderService(orders, "67")
	svc.now = func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) }
	return repository.NewClientRepository(gdb), orders, svc
}

func seedOrder(t *testing.T, clients *repository.ClientRepository, orders *repository.ServiceOrderRepository, telefone, numero string) uint {
	t.Helper()
	ctx := context.Background()
	cid, err := clients.Create(ctx, models.NewClient{Nome: "João", Telefone: telefone, Rua: "Rua A", Numero: "10"})
	require.NoError(t, err)
	id, err := orders.Create(ctx, models.NewServiceOrder{
		ClientID:      cid,
		NumeroOS:      numero,
		DataServico:   "2025-01-15",
		ValorServicos: 150,
		Desconto:      10,
		ValorTotal:    ComputeTotal(150, 10),
	})
	require.NoError(t, err)
	return id
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, 80.0, ComputeTotal(100, 20))
	assert.Equal(t, 150.0, ComputeTotal(150, 0))
	assert.Equal(t, 9.9, ComputeTotal(10.1, 0.2))
	assert.Equal(t, -5.0, ComputeTotal(10, 15))
}

func TestNextNumber(t *testing.T) {
	clients, orders, svc := setup(t)
	ctx := context.Background()
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	n, err := svc.NextNumber(ctx, jan)
	require.NoError(t, err)
	assert.Equal(t, "2501-0001", n)

	seedOrder(t, clients, orders, "11999999999", n)
	seedOrder(t, clients, orders, "11999999999", "2501-0002")
	seedOrder(t, clients, orders, "11999999999", "2412-0001")

	n, err = svc.NextNumber(ctx, jan)
	require.NoError(t, err)
	assert.Equal(t, "2501-0003", n)

	n, err = svc.NextNumber(ctx, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2502-0001", n)
}

func TestNextNumberAfterRemoval(t *testing.T) {
	clients, orders, svc := setup(t)
	ctx := context.Background()
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	first := seedOrder(t, clients, orders, "11999999999", "2501-0001")
	seedOrder(t, clients, orders, "11999999999", "2501-0002")
	require.NoError(t, orders.Remove(ctx, first))

	n, err := svc.NextNumber(ctx, jan)
	require.NoError(t, err)
	assert.Equal(t, "2501-0003", n)
}

func TestStats(t *testing.T) {
	clients, orders, svc := setup(t)
	ctx := context.Background()

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.Total)
	assert.Len(t, st.ByStatus, 4)

	a := seedOrder(t, clients, orders, "1", "2501-0001")
	seedOrder(t, clients, orders, "1", "2501-0002")
	c := seedOrder(t, clients, orders, "1", "2501-0003")
	require.NoError(t, orders.UpdateStatus(ctx, a, models.StatusEmAndamento))
	require.NoError(t, orders.UpdateStatus(ctx, c, models.StatusCancelado))

	st, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.Total)
	assert.Equal(t, int64(1), st.ByStatus[models.StatusPendente])
	assert.Equal(t, int64(1), st.ByStatus[models.StatusEmAndamento])
	assert.Equal(t, int64(0), st.ByStatus[models.StatusConcluido])
	assert.Equal(t, int64(1), st.ByStatus[models.StatusCancelado])
}

func TestExportPDF(t *testing.T) {
	clients, orders, svc := setup(t)
	id := seedOrder(t, clients, orders, "11999999999", "2501-0001")

	out, err := svc.ExportPDF(context.Background(), id, "pt")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportPDFMissing(t *testing.T) {
	_, _, svc := setup(t)

	_, err := svc.ExportPDF(context.Background(), 404, "pt")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentData(t *testing.T) {
	o := &models.ServiceOrderWithClient{
		ServiceOrder: models.ServiceOrder{
			NumeroOS:      "2501-0001",
			DataServico:   "2025-01-15",
			ValorServicos: 150,
			Desconto:      10,
			ValorTotal:    140,
			GarantiaDias:  30,
			Status:        models.StatusConcluido,
		},
		ClientNome:   "João",
		ClientRua:    "Rua A",
		ClientNumero: "10",
	}
	at := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	d := DocumentData(o, "pt", at)
	assert.Equal(t, "15/01/2025", d.Date)
	assert.Equal(t, "Concluído", d.Status)
	assert.Equal(t, "Rua A, nº 10", d.Client.Address)
	assert.Equal(t, 140.0, d.Total)
	assert.Equal(t, 30, d.WarrantyDays)
	assert.Equal(t, at, d.GeneratedAt)
}

func TestWhatsAppLink(t *testing.T) {
	clients, orders, svc := setup(t)
	ctx := context.Background()
	id := seedOrder(t, clients, orders, "99999-0000", "2501-0001")

	l, err := svc.WhatsAppLink(ctx, id, "pt")
	require.NoError(t, err)
	assert.Equal(t, "+5567999990000", l.Phone)
	assert.Equal(t, "https://wa.me/5567999990000?text=Ol%C3%A1%20Jo%C3%A3o%21%20Tudo%20bem%3F", l.Web)

	_, err = svc.WhatsAppLink(ctx, 404, "pt")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

type failingStore struct{ err error }

func (f failingStore) GetByID(context.Context, uint) (*models.ServiceOrderWithClient, error) {
	return nil, f.err
}

func (f failingStore) CountByStatus(context.Context) (map[models.Status]int64, error) {
	return nil, f.err
}

func (f failingStore) MaxNumberSuffix(context.Context, string) (int64, error) {
	return 0, f.err
}

func TestStoreErrorsPropagate(t *testing.T) {
	boom := errors.New("disk I/O error")
	svc := NewOrderService(failingStore{err: boom}, "67")
	ctx := context.Background()

	_, err := svc.NextNumber(ctx, time.Now())
	assert.ErrorIs(t, err, boom)
	_, err = svc.Stats(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.ExportPDF(ctx, 1, "pt")
	assert.ErrorIs(t, err, boom)
	_, err = svc.WhatsAppLink(ctx, 1, "pt")
	assert.ErrorIs(t, err, boom)
}

func TestWhatsAppLinkNoPhone(t *testing.T) {
	svc := NewOrderService(fixedStore{o: &models.ServiceOrderWithClient{ClientNome: "Ana"}}, "67")

	_, err := svc.WhatsAppLink(context.Background(), 1, "pt")
	assert.ErrorIs(t, err, share.ErrNoPhone)
}

type fixedStore struct {
	failingStore
	o *models.ServiceOrderWithClient
}

func (f fixedStore) GetByID(context.Context, uint) (*models.ServiceOrderWithClient, error) {
	return f.o, nil
}
