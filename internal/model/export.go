package model

// ExportRow is the flat projection of one line item (or of an order with no
// line items, in which case every line-item field is empty). All fields are
// already formatted for output.
type ExportRow struct {
	OrderID       string
	OrderName     string
	CreatedAt     string
	OrderTotal    string
	CustomerName  string
	CustomerEmail string
	LineItemID    string
	LineItemTitle string
	SKU           string
	Quantity      string
	UnitPrice     string
	LineTotal     string
	Currency      string
}

type OrderRowOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	ItemCount int    `json:"itemCount"`
	Total     string `json:"total"`
	Preview   string `json:"preview"`
}

type OrdersPageOutput struct {
	Rows     []OrderRowOutput `json:"rows"`
	PageInfo PageInfo         `json:"pageInfo"`
}
