package db

import (
	"errors"
	"fmt"

	"github.com/diewo77/oficina/internal/models"
	"gorm.io/gorm"
)

const createClients = `CREATE TABLE IF NOT EXISTS clients (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nome TEXT NOT NULL,
	telefone TEXT NOT NULL,
	rua TEXT NOT NULL,
	numero TEXT NOT NULL,
	bairro TEXT,
	complemento TEXT
)`

const createServiceOrders = `CREATE TABLE IF NOT EXISTS service_orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id INTEGER NOT NULL,
	numero_os TEXT NOT NULL,
	data_servico TEXT NOT NULL,
	equipamento_tipo TEXT,
	equipamento_marca TEXT,
	equipamento_modelo TEXT,
	equipamento_serie TEXT,
	servicos_realizados TEXT,
	valor_servicos REAL NOT NULL DEFAULT 0,
	desconto REAL NOT NULL DEFAULT 0,
	valor_total REAL NOT NULL DEFAULT 0,
	observacoes TEXT,
	garantia_dias INTEGER DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'pendente',
	FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE
)`

var schema = []string{
	createClients,
	createServiceOrders,
	`CREATE INDEX IF NOT EXISTS idx_service_orders_client_id ON service_orders(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_service_orders_data_servico ON service_orders(data_servico)`,
}

// Migrate creates the clients and service_orders tables when absent.
// It is safe to run on every start. Tables are never altered or recreated:
// with foreign keys on, recreating clients would cascade-delete every order.
func Migrate(db *gorm.DB) error {
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}

	// sanity check: tables exist and every mapped column is present
	for _, m := range []any{&models.Client{}, &models.ServiceOrder{}} {
		if !db.Migrator().HasTable(m) {
			return fmt.Errorf("missing table after migration: %T", m)
		}
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return fmt.Errorf("parse %T: %w", m, err)
		}
		for _, col := range stmt.Schema.DBNames {
			if !db.Migrator().HasColumn(m, col) {
				return errors.New("missing column after migration: " + stmt.Schema.Table + "." + col)
			}
		}
	}
	return nil
}
