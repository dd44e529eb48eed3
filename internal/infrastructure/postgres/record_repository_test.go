package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/repository"
	"github.com/jhoicas/stock-insights/internal/infrastructure/postgres"
)

const testCompanyID = "00000000-0000-0000-0000-000000000002"

func TestSalesRecordRepo_ListSales_NormalizaEtiquetasYCantidades(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"sold_on", "product_name", "size", "color", "quantity"}).
		AddRow(from, "Camiseta", " Ｍ ", "", decimal.NewFromInt(3)).
		AddRow(from, "Pantalón", "M", "Azul", decimal.NewFromInt(9)).
		AddRow(to, " Ｃａｍｉｓｅｔａ ", "L", "rojo", decimal.RequireFromString("2.6"))
	mock.ExpectQuery(`SELECT sold_on, product_name`).
		WithArgs(testCompanyID, from, to).
		WillReturnRows(rows)

	repo := postgres.NewSalesRecordRepository(mock)
	got, err := repo.ListSales(context.Background(), testCompanyID, from, to, repository.RecordFilter{Product: " Camiseta"})
	require.NoError(t, err)

	assert.Equal(t, []entity.SaleRecord{
		{Date: from, ProductName: "Camiseta", Size: "M", Color: "", Quantity: 3},
		{Date: to, ProductName: "Camiseta", Size: "L", Color: "rojo", Quantity: 3},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRecordRepo_ListSales_ErrorDeConsulta(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	boom := errors.New("conexión perdida")
	mock.ExpectQuery(`SELECT sold_on`).
		WithArgs(testCompanyID, from, to).
		WillReturnError(boom)

	repo := postgres.NewSalesRecordRepository(mock)
	_, err = repo.ListSales(context.Background(), testCompanyID, from, to, repository.RecordFilter{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "sales.ListSales")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRecordRepo_ListInventory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"product_name", "color", "size", "warehouse_name", "available", "on_hand"}).
		AddRow("Camiseta", "红", "M", "A", decimal.NewFromInt(5), decimal.NewFromInt(5)).
		AddRow("Camiseta", "红", "M", " B ", decimal.NewFromInt(3), decimal.NewFromInt(4))
	mock.ExpectQuery(`FROM inventory_snapshots`).
		WithArgs(testCompanyID).
		WillReturnRows(rows)

	repo := postgres.NewInventoryRecordRepository(mock)
	got, err := repo.ListInventory(context.Background(), testCompanyID, repository.RecordFilter{})
	require.NoError(t, err)

	assert.Equal(t, []entity.InventoryRecord{
		{ProductName: "Camiseta", Color: "红", Size: "M", Warehouse: "A", Available: 5, OnHand: 5},
		{ProductName: "Camiseta", Color: "红", Size: "M", Warehouse: "B", Available: 3, OnHand: 4},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRecordRepo_ListInventory_FiltraEtiquetasNormalizadas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"product_name", "color", "size", "warehouse_name", "available", "on_hand"}).
		AddRow("Camiseta", "Rojo", "M", "Ｎｏｒｔｅ", decimal.NewFromInt(5), decimal.NewFromInt(5)).
		AddRow("Camiseta", "Rojo", "M", "Sur", decimal.NewFromInt(3), decimal.NewFromInt(3)).
		AddRow(" Jean", "Azul", "32", "Norte ", decimal.NewFromInt(2), decimal.NewFromInt(2))
	mock.ExpectQuery(`FROM inventory_snapshots`).
		WithArgs(testCompanyID).
		WillReturnRows(rows)

	repo := postgres.NewInventoryRecordRepository(mock)
	got, err := repo.ListInventory(context.Background(), testCompanyID, repository.RecordFilter{Product: "Camiseta", Warehouse: "Norte"})
	require.NoError(t, err)

	assert.Equal(t, []entity.InventoryRecord{
		{ProductName: "Camiseta", Color: "Rojo", Size: "M", Warehouse: "Norte", Available: 5, OnHand: 5},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRecordRepo_ListInventory_ErrorDeConsulta(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("conexión perdida")
	mock.ExpectQuery(`FROM inventory_snapshots`).
		WithArgs(testCompanyID).
		WillReturnError(boom)

	repo := postgres.NewInventoryRecordRepository(mock)
	_, err = repo.ListInventory(context.Background(), testCompanyID, repository.RecordFilter{Warehouse: "Norte"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "inventory.ListInventory")
	assert.NoError(t, mock.ExpectationsWereMet())
}
