package generate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeseed/internal/models"
)

func testConfig() Config {
	return Config{Users: 50, Products: 30, Orders: 80, MaxItemsPerOrder: 5, Reviews: 60}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestAllProducesConfiguredCounts(t *testing.T) {
	dataset, err := All(testRand(), testConfig())
	require.NoError(t, err)

	assert.Len(t, dataset.Users, 50)
	assert.Len(t, dataset.Products, 30)
	assert.Len(t, dataset.Orders, 80)
	assert.Len(t, dataset.Reviews, 60)
	assert.GreaterOrEqual(t, len(dataset.OrderItems), 80)
	assert.LessOrEqual(t, len(dataset.OrderItems), 400)
}

func TestReferentialIntegrity(t *testing.T) {
	dataset, err := All(testRand(), testConfig())
	require.NoError(t, err)

	userIDs := make(map[int64]bool)
	for _, u := range dataset.Users {
		userIDs[u.UserID] = true
	}
	productIDs := make(map[int64]bool)
	for _, p := range dataset.Products {
		productIDs[p.ProductID] = true
	}
	orderIDs := make(map[int64]bool)
	for _, o := range dataset.Orders {
		orderIDs[o.OrderID] = true
		assert.True(t, userIDs[o.UserID], "order %d references unknown user %d", o.OrderID, o.UserID)
	}
	for _, item := range dataset.OrderItems {
		assert.True(t, orderIDs[item.OrderID], "item %d references unknown order %d", item.OrderItemID, item.OrderID)
		assert.True(t, productIDs[item.ProductID], "item %d references unknown product %d", item.OrderItemID, item.ProductID)
	}
	for _, r := range dataset.Reviews {
		assert.True(t, userIDs[r.UserID], "review %d references unknown user %d", r.ReviewID, r.UserID)
		assert.True(t, productIDs[r.ProductID], "review %d references unknown product %d", r.ReviewID, r.ProductID)
	}
}

func TestOrderTotalsMatchItems(t *testing.T) {
	dataset, err := All(testRand(), testConfig())
	require.NoError(t, err)

	totals := make(map[int64]decimal.Decimal)
	counts := make(map[int64]int)
	for _, item := range dataset.OrderItems {
		sum, ok := totals[item.OrderID]
		if !ok {
			sum = decimal.Zero
		}
		totals[item.OrderID] = sum.Add(item.LineTotal)
		counts[item.OrderID]++
	}

	for _, o := range dataset.Orders {
		require.GreaterOrEqual(t, counts[o.OrderID], 1, "order %d has no items", o.OrderID)
		assert.True(t, o.TotalAmount.Equal(totals[o.OrderID].Round(2)),
			"order %d total %s != item sum %s", o.OrderID, o.TotalAmount, totals[o.OrderID])
	}
}

func TestLineTotalsAndBounds(t *testing.T) {
	dataset, err := All(testRand(), testConfig())
	require.NoError(t, err)

	for _, item := range dataset.OrderItems {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.LessOrEqual(t, item.Quantity, 4)
		want := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		assert.True(t, item.LineTotal.Equal(want),
			"item %d line total %s != %s", item.OrderItemID, item.LineTotal, want)
	}
}

func TestUnitPriceIsSnapshot(t *testing.T) {
	dataset, err := All(testRand(), testConfig())
	require.NoError(t, err)

	prices := make(map[int64]decimal.Decimal)
	for _, p := range dataset.Products {
		prices[p.ProductID] = p.Price
	}

	// Mutating the product collection must not touch historical items.
	for i := range dataset.Products {
		dataset.Products[i].Price = decimal.Zero
	}

	for _, item := range dataset.OrderItems {
		assert.True(t, item.UnitPrice.Equal(prices[item.ProductID]),
			"item %d unit price changed after product mutation", item.OrderItemID)
	}
}

func TestEmailsUnique(t *testing.T) {
	users, err := Users(testRand(), 200)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, u := range users {
		assert.False(t, seen[u.Email], "duplicate email %s", u.Email)
		seen[u.Email] = true
	}
}

func TestOrderStatusesValid(t *testing.T) {
	dataset, err := All(testRand(), testConfig())
	require.NoError(t, err)

	valid := make(map[string]bool)
	for _, s := range models.OrderStatuses {
		valid[s] = true
	}
	for _, o := range dataset.Orders {
		assert.True(t, valid[o.Status], "order %d has unknown status %q", o.OrderID, o.Status)
	}
}

func TestProductFieldsWithinRanges(t *testing.T) {
	products, err := Products(testRand(), 100)
	require.NoError(t, err)

	lo := decimal.NewFromFloat(15.0)
	hi := decimal.NewFromFloat(500.0)
	for _, p := range products {
		assert.True(t, p.Price.GreaterThanOrEqual(lo) && p.Price.LessThanOrEqual(hi),
			"price %s out of range", p.Price)
		assert.True(t, p.Price.Equal(p.Price.Round(2)), "price %s not rounded to cents", p.Price)
		assert.GreaterOrEqual(t, p.Inventory, 10)
		assert.LessOrEqual(t, p.Inventory, 400)
	}
}

func TestDatesWithinWindows(t *testing.T) {
	dataset, err := All(testRand(), testConfig())
	require.NoError(t, err)

	upper := time.Now().Add(time.Minute)
	signupFloor := time.Now().AddDate(0, 0, -366)
	recentFloor := time.Now().AddDate(0, 0, -121)

	for _, u := range dataset.Users {
		assert.True(t, u.SignupDate.After(signupFloor) && u.SignupDate.Before(upper))
	}
	for _, o := range dataset.Orders {
		assert.True(t, o.OrderDate.After(recentFloor) && o.OrderDate.Before(upper))
	}
	for _, r := range dataset.Reviews {
		assert.True(t, r.ReviewDate.After(recentFloor) && r.ReviewDate.Before(upper))
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { now = restore }()

	first, err := All(rand.New(rand.NewSource(7)), testConfig())
	require.NoError(t, err)
	second, err := All(rand.New(rand.NewSource(7)), testConfig())
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero users", Config{Users: 0, Products: 1, Orders: 1, MaxItemsPerOrder: 1, Reviews: 1}},
		{"negative products", Config{Users: 1, Products: -2, Orders: 1, MaxItemsPerOrder: 1, Reviews: 1}},
		{"zero orders", Config{Users: 1, Products: 1, Orders: 0, MaxItemsPerOrder: 1, Reviews: 1}},
		{"zero max items", Config{Users: 1, Products: 1, Orders: 1, MaxItemsPerOrder: 0, Reviews: 1}},
		{"zero reviews", Config{Users: 1, Products: 1, Orders: 1, MaxItemsPerOrder: 1, Reviews: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := All(testRand(), tc.cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestEmptyCollectionsRejected(t *testing.T) {
	rng := testRand()

	_, err := Orders(rng, 5, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	orders := []models.Order{{OrderID: 1, UserID: 1}}
	_, err = OrderItems(rng, nil, []models.Product{{ProductID: 1}}, 3)
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = OrderItems(rng, orders, nil, 3)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Reviews(rng, 5, nil, []models.Product{{ProductID: 1}})
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = Reviews(rng, 5, []models.User{{UserID: 1}}, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
