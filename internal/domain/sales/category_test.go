package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-insights/internal/domain/aggregate"
	"github.com/jhoicas/stock-insights/internal/domain/entity"
	"github.com/jhoicas/stock-insights/internal/domain/sales"
)

func TestBySizeYByColor(t *testing.T) {
	d := day(2024, time.June, 1)
	records := []entity.SaleRecord{
		{Date: d, Size: "M", Color: "红", Quantity: 2},
		{Date: d, Size: "L", Color: "黑", Quantity: 4},
		{Date: d, Size: "M", Color: "黑", Quantity: 3},
		{Date: d, Size: "", Color: "", Quantity: 1},
	}

	bySize := sales.BySize(records)
	assert.Equal(t, []aggregate.Category{
		{Key: "M", Quantity: 5},
		{Key: "L", Quantity: 4},
		{Key: "", Quantity: 1},
	}, bySize)

	byColor := sales.ByColor(records)
	assert.Equal(t, []aggregate.Category{
		{Key: "黑", Quantity: 7},
		{Key: "红", Quantity: 2},
		{Key: "", Quantity: 1},
	}, byColor)

	assert.Equal(t, 10, aggregate.Total(bySize))
	assert.Equal(t, 10, aggregate.Total(byColor))
}
