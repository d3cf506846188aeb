package database

// dropStatements removes the five tables, children before parents so
// foreign keys never dangle mid-reset.
var dropStatements = []string{
	"DROP TABLE IF EXISTS reviews",
	"DROP TABLE IF EXISTS order_items",
	"DROP TABLE IF EXISTS orders",
	"DROP TABLE IF EXISTS products",
	"DROP TABLE IF EXISTS users",
}

var createStatements = []string{
	`CREATE TABLE users (
	    user_id INTEGER PRIMARY KEY,
	    first_name TEXT NOT NULL,
	    last_name TEXT NOT NULL,
	    email TEXT NOT NULL UNIQUE,
	    signup_date TEXT NOT NULL,
	    country TEXT NOT NULL
	)`,

	`CREATE TABLE products (
	    product_id INTEGER PRIMARY KEY,
	    name TEXT NOT NULL,
	    category TEXT NOT NULL,
	    price REAL NOT NULL,
	    inventory INTEGER NOT NULL
	)`,

	`CREATE TABLE orders (
	    order_id INTEGER PRIMARY KEY,
	    user_id INTEGER NOT NULL,
	    order_date TEXT NOT NULL,
	    status TEXT NOT NULL,
	    total_amount REAL NOT NULL,
	    FOREIGN KEY (user_id) REFERENCES users(user_id)
	)`,

	`CREATE TABLE order_items (
	    order_item_id INTEGER PRIMARY KEY,
	    order_id INTEGER NOT NULL,
	    product_id INTEGER NOT NULL,
	    quantity INTEGER NOT NULL,
	    unit_price REAL NOT NULL,
	    line_total REAL NOT NULL,
	    FOREIGN KEY (order_id) REFERENCES orders(order_id),
	    FOREIGN KEY (product_id) REFERENCES products(product_id)
	)`,

	`CREATE TABLE reviews (
	    review_id INTEGER PRIMARY KEY,
	    user_id INTEGER NOT NULL,
	    product_id INTEGER NOT NULL,
	    rating INTEGER NOT NULL,
	    review_date TEXT NOT NULL,
	    comment TEXT NOT NULL,
	    FOREIGN KEY (user_id) REFERENCES users(user_id),
	    FOREIGN KEY (product_id) REFERENCES products(product_id)
	)`,
}

// InitSchema drops and recreates the five tables. This is a destructive,
// non-migrating reset; running it twice leaves an empty schema.
func (db *DB) InitSchema() error {
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	for _, stmt := range createStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ColumnType is the semantic type the loader casts a CSV value to.
type ColumnType int

const (
	ColumnInteger ColumnType = iota
	ColumnReal
	ColumnText
)

func (t ColumnType) String() string {
	switch t {
	case ColumnInteger:
		return "integer"
	case ColumnReal:
		return "real"
	default:
		return "text"
	}
}

// Column pairs a column name with its semantic type.
type Column struct {
	Name string
	Type ColumnType
}

// TableSchema is an ordered column descriptor for one table.
type TableSchema struct {
	Name    string
	Columns []Column
}

// Column returns the named column, or false if the table has none.
func (s TableSchema) Column(name string) (Column, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// TableSchemas lists the five tables in dependency order: loading in
// this order never violates a foreign key.
var TableSchemas = []TableSchema{
	{
		Name: "users",
		Columns: []Column{
			{"user_id", ColumnInteger},
			{"first_name", ColumnText},
			{"last_name", ColumnText},
			{"email", ColumnText},
			{"signup_date", ColumnText},
			{"country", ColumnText},
		},
	},
	{
		Name: "products",
		Columns: []Column{
			{"product_id", ColumnInteger},
			{"name", ColumnText},
			{"category", ColumnText},
			{"price", ColumnReal},
			{"inventory", ColumnInteger},
		},
	},
	{
		Name: "orders",
		Columns: []Column{
			{"order_id", ColumnInteger},
			{"user_id", ColumnInteger},
			{"order_date", ColumnText},
			{"status", ColumnText},
			{"total_amount", ColumnReal},
		},
	},
	{
		Name: "order_items",
		Columns: []Column{
			{"order_item_id", ColumnInteger},
			{"order_id", ColumnInteger},
			{"product_id", ColumnInteger},
			{"quantity", ColumnInteger},
			{"unit_price", ColumnReal},
			{"line_total", ColumnReal},
		},
	},
	{
		Name: "reviews",
		Columns: []Column{
			{"review_id", ColumnInteger},
			{"user_id", ColumnInteger},
			{"product_id", ColumnInteger},
			{"rating", ColumnInteger},
			{"review_date", ColumnText},
			{"comment", ColumnText},
		},
	},
}
