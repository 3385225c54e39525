package model

// Money keeps the amount exactly as the Admin API sent it. Parsing into a
// decimal happens in the normalizer; an unparseable amount stays absent.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

type Customer struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type LineItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice *Money `json:"unitPrice,omitempty"`
	LineTotal *Money `json:"lineTotal,omitempty"`
}

type Order struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt string     `json:"createdAt"`
	Total     *Money     `json:"total,omitempty"`
	Customer  *Customer  `json:"customer,omitempty"`
	LineItems []LineItem `json:"lineItems"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
}

type OrdersPage struct {
	Orders   []Order  `json:"orders"`
	PageInfo PageInfo `json:"pageInfo"`
}
