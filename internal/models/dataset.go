package models

// Row maps a field name to its exported value.
type Row map[string]any

// Table is a named record collection together with its explicit field
// ordering. Exporters and loaders consume the ordering from here rather
// than deriving it from map iteration.
type Table struct {
	Name   string
	Fields []string
	Rows   []Row
}

// Per-table field orderings. These must stay in sync with the Row
// methods below and with the column order in database.TableSchemas.
var (
	UserFields      = []string{"user_id", "first_name", "last_name", "email", "signup_date", "country"}
	ProductFields   = []string{"product_id", "name", "category", "price", "inventory"}
	OrderFields     = []string{"order_id", "user_id", "order_date", "status", "total_amount"}
	OrderItemFields = []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price", "line_total"}
	ReviewFields    = []string{"review_id", "user_id", "product_id", "rating", "review_date", "comment"}
)

func (u User) Row() Row {
	return Row{
		"user_id":     u.UserID,
		"first_name":  u.FirstName,
		"last_name":   u.LastName,
		"email":       u.Email,
		"signup_date": u.SignupDate.Format(DateLayout),
		"country":     u.Country,
	}
}

func (p Product) Row() Row {
	return Row{
		"product_id": p.ProductID,
		"name":       p.Name,
		"category":   p.Category,
		"price":      p.Price.StringFixed(2),
		"inventory":  p.Inventory,
	}
}

func (o Order) Row() Row {
	return Row{
		"order_id":     o.OrderID,
		"user_id":      o.UserID,
		"order_date":   o.OrderDate.Format(DateLayout),
		"status":       o.Status,
		"total_amount": o.TotalAmount.StringFixed(2),
	}
}

func (i OrderItem) Row() Row {
	return Row{
		"order_item_id": i.OrderItemID,
		"order_id":      i.OrderID,
		"product_id":    i.ProductID,
		"quantity":      i.Quantity,
		"unit_price":    i.UnitPrice.StringFixed(2),
		"line_total":    i.LineTotal.StringFixed(2),
	}
}

func (r Review) Row() Row {
	return Row{
		"review_id":   r.ReviewID,
		"user_id":     r.UserID,
		"product_id":  r.ProductID,
		"rating":      r.Rating,
		"review_date": r.ReviewDate.Format(DateLayout),
		"comment":     r.Comment,
	}
}

// Dataset bundles one generation run's record collections.
type Dataset struct {
	Users      []User
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}

// Tables returns the dataset as exportable tables in generation order,
// so that referenced collections always precede their referrers.
func (d *Dataset) Tables() []Table {
	users := Table{Name: "users", Fields: UserFields}
	for _, u := range d.Users {
		users.Rows = append(users.Rows, u.Row())
	}

	products := Table{Name: "products", Fields: ProductFields}
	for _, p := range d.Products {
		products.Rows = append(products.Rows, p.Row())
	}

	orders := Table{Name: "orders", Fields: OrderFields}
	for _, o := range d.Orders {
		orders.Rows = append(orders.Rows, o.Row())
	}

	items := Table{Name: "order_items", Fields: OrderItemFields}
	for _, i := range d.OrderItems {
		items.Rows = append(items.Rows, i.Row())
	}

	reviews := Table{Name: "reviews", Fields: ReviewFields}
	for _, r := range d.Reviews {
		reviews.Rows = append(reviews.Rows, r.Row())
	}

	return []Table{users, products, orders, items, reviews}
}
