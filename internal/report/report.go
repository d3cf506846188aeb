// Package report runs the fixed aggregation queries and renders their
// results as aligned text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"storeseed/internal/database"
)

// Report is a titled aggregation query with an explicit header ordering.
type Report struct {
	Title   string
	SQL     string
	Headers []string
}

// Reports returns the fixed, ordered report set.
func Reports() []Report {
	return []Report{
		{
			Title: "Top 5 Customers by Spend",
			SQL: `
				SELECT
				    u.user_id,
				    u.first_name || ' ' || u.last_name AS customer_name,
				    ROUND(SUM(o.total_amount), 2) AS total_spent,
				    COUNT(o.order_id) AS order_count
				FROM users u
				JOIN orders o ON o.user_id = u.user_id
				GROUP BY u.user_id, customer_name
				ORDER BY total_spent DESC
				LIMIT 5`,
			Headers: []string{"user_id", "customer_name", "total_spent", "order_count"},
		},
		{
			Title: "Best Reviewed Products",
			SQL: `
				SELECT
				    p.product_id,
				    p.name AS product_name,
				    ROUND(AVG(r.rating), 2) AS avg_rating,
				    COUNT(r.review_id) AS review_count
				FROM products p
				JOIN reviews r ON r.product_id = p.product_id
				GROUP BY p.product_id, product_name
				HAVING review_count >= 2
				ORDER BY avg_rating DESC, review_count DESC
				LIMIT 5`,
			Headers: []string{"product_id", "product_name", "avg_rating", "review_count"},
		},
		{
			Title: "Recent Order Overview",
			SQL: `
				SELECT
				    o.order_id,
				    o.order_date,
				    u.first_name || ' ' || u.last_name AS customer_name,
				    COUNT(oi.order_item_id) AS item_count,
				    ROUND(o.total_amount, 2) AS order_total,
				    o.status
				FROM orders o
				JOIN users u ON u.user_id = o.user_id
				JOIN order_items oi ON oi.order_id = o.order_id
				WHERE o.status != 'CANCELLED'
				GROUP BY o.order_id, o.order_date, customer_name, o.total_amount, o.status
				ORDER BY o.order_date DESC
				LIMIT 10`,
			Headers: []string{"order_id", "order_date", "customer_name", "item_count", "order_total", "status"},
		},
	}
}

// Run executes every report against db and renders the results to w.
func Run(db *database.DB, w io.Writer) error {
	for _, rep := range Reports() {
		fmt.Fprintf(w, "=== %s ===\n", rep.Title)
		rows, err := collect(db, rep)
		if err != nil {
			return fmt.Errorf("report %q failed: %w", rep.Title, err)
		}
		renderTable(w, rep.Headers, rows)
	}
	return nil
}

// collect runs the report query and formats every cell as a string.
func collect(db *database.DB, rep Report) ([][]string, error) {
	rows, err := db.Query(rep.SQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		values := make([]any, len(rep.Headers))
		ptrs := make([]any, len(rep.Headers))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = formatValue(v)
		}
		out = append(out, cells)
	}
	return out, rows.Err()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// renderTable writes an aligned table: header, a -+- separator row, then
// one line per row, every column padded to its widest value.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No rows returned.")
		fmt.Fprintln(w)
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
		}
		fmt.Fprintln(w, strings.Join(padded, " | "))
	}

	writeRow(headers)
	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(dashes, "-+-"))
	for _, row := range rows {
		writeRow(row)
	}
	fmt.Fprintln(w)
}
