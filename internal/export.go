package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/VitaBrrevis/orders-export/internal/model"
)

const (
	ProfileDefault  = "default"
	ProfileCustomer = "customer"
)

const previewItems = 3

// DefaultColumns is the column set the export button on the orders page uses.
var DefaultColumns = []string{
	"order", "createdAt", "orderTotal", "lineItemTitle", "sku",
	"quantity", "lineItemPrice", "lineItemTotal", "id",
}

// CustomerColumns additionally carries the customer and currency fields.
var CustomerColumns = []string{
	"order_id", "order_name", "order_created_at", "customer_name", "customer_email",
	"line_item_id", "line_item_title", "line_item_sku", "quantity", "unit_price", "currency",
}

func ColumnsForProfile(profile string) ([]string, error) {
	switch profile {
	case "", ProfileDefault:
		return DefaultColumns, nil
	case ProfileCustomer:
		return CustomerColumns, nil
	}
	return nil, ErrUnknownProfile
}

// ProjectOrder flattens one order into export rows: one row per line item, or
// a single row with empty line-item fields when the order has none. A missing
// line total derives from unit price times quantity.
func ProjectOrder(o model.Order) []model.ExportRow {
	base := model.ExportRow{
		OrderID:   o.ID,
		OrderName: o.Name,
		CreatedAt: FormatTimestampUTC(o.CreatedAt),
	}

	orderTotal, ok := MoneyAmount(o.Total)
	base.OrderTotal = FormatAmount(orderTotal, ok)
	if o.Total != nil {
		base.Currency = o.Total.CurrencyCode
	}
	if o.Customer != nil {
		base.CustomerName = o.Customer.DisplayName
		base.CustomerEmail = o.Customer.Email
	}

	if len(o.LineItems) == 0 {
		return []model.ExportRow{base}
	}

	rows := make([]model.ExportRow, 0, len(o.LineItems))
	for _, li := range o.LineItems {
		row := base
		row.LineItemID = li.ID
		row.LineItemTitle = li.Name
		row.SKU = li.SKU
		row.Quantity = strconv.Itoa(li.Quantity)

		price, priceOK := MoneyAmount(li.UnitPrice)
		row.UnitPrice = FormatAmount(price, priceOK)

		total, totalOK := MoneyAmount(li.LineTotal)
		if !totalOK && priceOK {
			total = price.Mul(decimal.NewFromInt(int64(li.Quantity)))
			totalOK = true
		}
		row.LineTotal = FormatAmount(total, totalOK)

		if li.UnitPrice != nil && li.UnitPrice.CurrencyCode != "" {
			row.Currency = li.UnitPrice.CurrencyCode
		}

		rows = append(rows, row)
	}
	return rows
}

// ProjectOrders keeps only the selected orders, preserving input order.
// An empty selection yields no rows.
func ProjectOrders(orders []model.Order, selected map[string]struct{}) []model.ExportRow {
	var rows []model.ExportRow
	for _, o := range orders {
		if _, ok := selected[o.ID]; !ok {
			continue
		}
		rows = append(rows, ProjectOrder(o)...)
	}
	return rows
}

// ToCSV serializes the header and rows, fields in declared column order.
// Lines are joined with a single newline and there is no trailing newline.
func ToCSV(rows []model.ExportRow, columns []string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(columns, ","))

	for _, r := range rows {
		fields := make([]string, 0, len(columns))
		for _, col := range columns {
			fields = append(fields, csvEscape(rowField(r, col)))
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

// csvEscape wraps a field in quotes only when it contains a comma, quote or
// newline, doubling internal quotes.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func rowField(r model.ExportRow, column string) string {
	switch column {
	case "order", "order_name":
		return r.OrderName
	case "createdAt", "order_created_at":
		return r.CreatedAt
	case "orderTotal":
		return r.OrderTotal
	case "lineItemTitle", "line_item_title":
		return r.LineItemTitle
	case "sku", "line_item_sku":
		return r.SKU
	case "quantity":
		return r.Quantity
	case "lineItemPrice", "unit_price":
		return r.UnitPrice
	case "lineItemTotal":
		return r.LineTotal
	case "id", "order_id":
		return r.OrderID
	case "line_item_id":
		return r.LineItemID
	case "customer_name":
		return r.CustomerName
	case "customer_email":
		return r.CustomerEmail
	case "currency":
		return r.Currency
	}
	return ""
}

func ExportFilename(now time.Time) string {
	return fmt.Sprintf("orders_export_%d.csv", now.UnixMilli())
}

// TableRow shapes one order for the admin table.
func TableRow(o model.Order) model.OrderRowOutput {
	total, ok := MoneyAmount(o.Total)
	return model.OrderRowOutput{
		ID:        o.ID,
		Name:      o.Name,
		CreatedAt: FormatTimestampUTC(o.CreatedAt),
		ItemCount: len(o.LineItems),
		Total:     FormatAmount(total, ok),
		Preview:   PreviewLineItems(o),
	}
}

// PreviewLineItems builds the short line-item summary shown in the table,
// e.g. `Widget [W-1] × 2 = 19.98; …(+4)`.
func PreviewLineItems(o model.Order) string {
	if len(o.LineItems) == 0 {
		return "—"
	}

	shown := o.LineItems
	if len(shown) > previewItems {
		shown = shown[:previewItems]
	}

	parts := make([]string, 0, len(shown))
	for _, li := range shown {
		part := li.Name
		if li.SKU != "" {
			part += " [" + li.SKU + "]"
		}
		part += fmt.Sprintf(" × %d", li.Quantity)

		price, priceOK := MoneyAmount(li.UnitPrice)
		if total, ok := MoneyAmount(li.LineTotal); ok {
			part += " = " + FormatAmount(total, true)
		} else if priceOK {
			part += " @ " + FormatAmount(price, true)
		}
		parts = append(parts, part)
	}

	out := strings.Join(parts, "; ")
	if rest := len(o.LineItems) - len(shown); rest > 0 {
		out += fmt.Sprintf(" …(+%d)", rest)
	}
	return out
}
