package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeseed/internal/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSVHeaderAndRowOrder(t *testing.T) {
	table := models.Table{
		Name:   "things",
		Fields: []string{"b", "a"},
		Rows: []models.Row{
			{"a": int64(1), "b": "first"},
			{"a": int64(2), "b": "second"},
			{"a": int64(3), "b": "third"},
		},
	}

	dir := t.TempDir()
	path, err := WriteCSV(table, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "things.csv"), path)

	records := readCSV(t, path)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"b", "a"}, records[0])
	assert.Equal(t, []string{"first", "1"}, records[1])
	assert.Equal(t, []string{"second", "2"}, records[2])
	assert.Equal(t, []string{"third", "3"}, records[3])
}

func TestWriteCSVQuotesSpecialCharacters(t *testing.T) {
	table := models.Table{
		Name:   "tricky",
		Fields: []string{"comment"},
		Rows: []models.Row{
			{"comment": `has, a comma`},
			{"comment": `she said "hi"`},
			{"comment": "line\nbreak"},
		},
	}

	path, err := WriteCSV(table, t.TempDir())
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 4)
	assert.Equal(t, `has, a comma`, records[1][0])
	assert.Equal(t, `she said "hi"`, records[2][0])
	assert.Equal(t, "line\nbreak", records[3][0])
}

func TestWriteCSVCreatesMissingDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	table := models.Table{Name: "empty", Fields: []string{"id"}}

	path, err := WriteCSV(table, dir)
	require.NoError(t, err)

	records := readCSV(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"id"}, records[0])
}

func TestWriteAllExportsEveryTable(t *testing.T) {
	dataset := &models.Dataset{
		Users: []models.User{{UserID: 1, FirstName: "Avery", LastName: "Lee", Email: "avery.lee1@example.com"}},
		Products: []models.Product{{
			ProductID: 1, Name: "Smart Watch", Category: "Electronics",
			Price: decimal.RequireFromString("19.99"), Inventory: 12,
		}},
		Orders: []models.Order{{
			OrderID: 1, UserID: 1, Status: models.OrderStatusShipped,
			TotalAmount: decimal.RequireFromString("39.98"),
		}},
		OrderItems: []models.OrderItem{{
			OrderItemID: 1, OrderID: 1, ProductID: 1, Quantity: 2,
			UnitPrice: decimal.RequireFromString("19.99"),
			LineTotal: decimal.RequireFromString("39.98"),
		}},
		Reviews: []models.Review{{ReviewID: 1, UserID: 1, ProductID: 1, Rating: 5, Comment: "Great quality!"}},
	}

	dir := t.TempDir()
	paths, err := WriteAll(dataset, dir)
	require.NoError(t, err)
	require.Len(t, paths, 5)

	for _, name := range []string{"users", "products", "orders", "order_items", "reviews"} {
		records := readCSV(t, paths[name])
		assert.Len(t, records, 2, "table %s", name)
	}

	products := readCSV(t, paths["products"])
	assert.Equal(t, models.ProductFields, products[0])
	assert.Equal(t, []string{"1", "Smart Watch", "Electronics", "19.99", "12"}, products[1])
}
