package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storeseed/internal/models"
)

// ErrInvalidConfig marks generation parameters that cannot produce a
// consistent dataset.
var ErrInvalidConfig = errors.New("invalid generation config")

// Config controls how many records each generation stage produces.
type Config struct {
	Users            int `mapstructure:"users"`
	Products         int `mapstructure:"products"`
	Orders           int `mapstructure:"orders"`
	MaxItemsPerOrder int `mapstructure:"max_items_per_order"`
	Reviews          int `mapstructure:"reviews"`
}

// Validate rejects configurations that would reference empty collections
// or produce no records.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"users", c.Users},
		{"products", c.Products},
		{"orders", c.Orders},
		{"max_items_per_order", c.MaxItemsPerOrder},
		{"reviews", c.Reviews},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, check.name, check.value)
		}
	}
	return nil
}

// Word pools for synthesized names and comments.
var (
	firstNames = []string{"Avery", "Jordan", "Parker", "Emerson", "Riley", "Quinn", "Dakota", "Harper"}
	lastNames  = []string{"Lee", "Garcia", "Patel", "Nguyen", "Walker", "Bennett", "Chen", "Lopez"}
	countries  = []string{"USA", "Canada", "Germany", "India", "Brazil", "Australia", "UK"}
	categories = []string{"Electronics", "Home", "Outdoors", "Beauty", "Fitness", "Toys"}
	adjectives = []string{"Eco", "Smart", "Compact", "Premium", "Lite", "Pro"}
	nouns      = []string{"Speaker", "Blender", "Tent", "Watch", "Mat", "Drone", "Bottle", "Camera"}
	comments   = []string{
		"Great quality!",
		"Met expectations.",
		"Would buy again.",
		"Not worth the price.",
		"Fast shipping and solid build.",
		"Packaging could be better.",
		"Exceeded expectations!",
		"Good value for money.",
	}
)

// now is stubbed in tests to pin the date windows.
var now = time.Now

// randDate returns a random date within the last withinDays days.
func randDate(rng *rand.Rand, withinDays int) time.Time {
	end := now()
	start := end.AddDate(0, 0, -withinDays)
	window := int64(end.Sub(start) / time.Second)
	return start.Add(time.Duration(rng.Int63n(window+1)) * time.Second)
}

// randPrice returns a price in [min, max] rounded to cents.
func randPrice(rng *rand.Rand, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + rng.Float64()*(max-min)).Round(2)
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// randStatus samples an order status from the fixed categorical
// distribution: PENDING 20%, SHIPPED 40%, DELIVERED 35%, CANCELLED 5%.
func randStatus(rng *rand.Rand) string {
	r := rng.Float64()
	switch {
	case r < 0.20:
		return models.OrderStatusPending
	case r < 0.60:
		return models.OrderStatusShipped
	case r < 0.95:
		return models.OrderStatusDelivered
	default:
		return models.OrderStatusCancelled
	}
}

// Users generates n users with run-unique emails and signup dates within
// the past year.
func Users(rng *rand.Rand, n int) ([]models.User, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: users must be positive, got %d", ErrInvalidConfig, n)
	}

	users := make([]models.User, 0, n)
	for idx := int64(1); idx <= int64(n); idx++ {
		first := pick(rng, firstNames)
		last := pick(rng, lastNames)
		// The running counter in the local part keeps emails unique
		// even when the same name pair repeats.
		email := fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), idx)
		users = append(users, models.User{
			UserID:     idx,
			FirstName:  first,
			LastName:   last,
			Email:      email,
			SignupDate: randDate(rng, 365),
			Country:    pick(rng, countries),
		})
	}
	return users, nil
}

// Products generates n products with adjective+noun names and prices in
// [15.00, 500.00].
func Products(rng *rand.Rand, n int) ([]models.Product, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: products must be positive, got %d", ErrInvalidConfig, n)
	}

	products := make([]models.Product, 0, n)
	for idx := int64(1); idx <= int64(n); idx++ {
		products = append(products, models.Product{
			ProductID: idx,
			Name:      pick(rng, adjectives) + " " + pick(rng, nouns),
			Category:  pick(rng, categories),
			Price:     randPrice(rng, 15.0, 500.0),
			Inventory: 10 + rng.Intn(391),
		})
	}
	return products, nil
}

// Orders generates n orders referencing the given users. Total amounts
// are zero until OrderItems backfills them.
func Orders(rng *rand.Rand, n int, users []models.User) ([]models.Order, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: orders must be positive, got %d", ErrInvalidConfig, n)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: orders reference an empty user collection", ErrInvalidConfig)
	}

	orders := make([]models.Order, 0, n)
	for idx := int64(1); idx <= int64(n); idx++ {
		user := users[rng.Intn(len(users))]
		orders = append(orders, models.Order{
			OrderID:     idx,
			UserID:      user.UserID,
			OrderDate:   randDate(rng, 120),
			Status:      randStatus(rng),
			TotalAmount: decimal.Zero,
		})
	}
	return orders, nil
}

// OrderItems generates 1..maxPerOrder items for every order and writes
// the rounded sum of line totals back onto each order. Item ids come
// from a single counter across all orders. Unit prices are snapshots of
// the product price at generation time.
func OrderItems(rng *rand.Rand, orders []models.Order, products []models.Product, maxPerOrder int) ([]models.OrderItem, error) {
	if maxPerOrder <= 0 {
		return nil, fmt.Errorf("%w: max_items_per_order must be positive, got %d", ErrInvalidConfig, maxPerOrder)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: order items reference an empty order collection", ErrInvalidConfig)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: order items reference an empty product collection", ErrInvalidConfig)
	}

	var items []models.OrderItem
	itemID := int64(1)
	for i := range orders {
		numItems := 1 + rng.Intn(maxPerOrder)
		orderTotal := decimal.Zero
		for j := 0; j < numItems; j++ {
			product := products[rng.Intn(len(products))]
			quantity := 1 + rng.Intn(4)
			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
			orderTotal = orderTotal.Add(lineTotal)
			items = append(items, models.OrderItem{
				OrderItemID: itemID,
				OrderID:     orders[i].OrderID,
				ProductID:   product.ProductID,
				Quantity:    quantity,
				UnitPrice:   product.Price,
				LineTotal:   lineTotal,
			})
			itemID++
		}
		orders[i].TotalAmount = orderTotal.Round(2)
	}
	return items, nil
}

// Reviews generates n reviews. User and product are picked independently;
// a reviewer need not have purchased the product.
func Reviews(rng *rand.Rand, n int, users []models.User, products []models.Product) ([]models.Review, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: reviews must be positive, got %d", ErrInvalidConfig, n)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: reviews reference an empty user collection", ErrInvalidConfig)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: reviews reference an empty product collection", ErrInvalidConfig)
	}

	reviews := make([]models.Review, 0, n)
	for idx := int64(1); idx <= int64(n); idx++ {
		user := users[rng.Intn(len(users))]
		product := products[rng.Intn(len(products))]
		reviews = append(reviews, models.Review{
			ReviewID:   idx,
			UserID:     user.UserID,
			ProductID:  product.ProductID,
			Rating:     1 + rng.Intn(5),
			ReviewDate: randDate(rng, 120),
			Comment:    pick(rng, comments),
		})
	}
	return reviews, nil
}

// All runs the five generation stages in dependency order so that every
// stage only references already-materialized collections.
func All(rng *rand.Rand, cfg Config) (*models.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	users, err := Users(rng, cfg.Users)
	if err != nil {
		return nil, err
	}
	products, err := Products(rng, cfg.Products)
	if err != nil {
		return nil, err
	}
	orders, err := Orders(rng, cfg.Orders, users)
	if err != nil {
		return nil, err
	}
	items, err := OrderItems(rng, orders, products, cfg.MaxItemsPerOrder)
	if err != nil {
		return nil, err
	}
	reviews, err := Reviews(rng, cfg.Reviews, users, products)
	if err != nil {
		return nil, err
	}

	return &models.Dataset{
		Users:      users,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Reviews:    reviews,
	}, nil
}
