package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/VitaBrrevis/orders-export/internal/model"
)

const ordersWithLinesQuery = `query OrdersWithLines($first: Int!, $after: String) {
  orders(first: $first, after: $after, reverse: true, sortKey: CREATED_AT) {
    pageInfo { hasNextPage endCursor }
    edges {
      node {
        id
        name
        createdAt
        totalPriceSet { shopMoney { amount currencyCode } }
        customer { displayName email }
        lineItems(first: 100) {
          edges {
            node {
              id
              name
              sku
              quantity
              originalUnitPriceSet { shopMoney { amount currencyCode } }
              discountedTotalSet { shopMoney { amount } }
            }
          }
        }
      }
    }
  }
}`

type IOrderSource interface {
	OrdersPage(ctx context.Context, first int, after string) (model.OrdersPage, error)
}

type ShopifyClient struct {
	client *http.Client
	logger *zap.SugaredLogger
	url    string
	token  string
}

func NewShopifyClient(shopDomain, apiVersion, token string, logger *zap.SugaredLogger) *ShopifyClient {
	return &ShopifyClient{
		client: &http.Client{},
		logger: logger,
		url:    fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shopDomain, apiVersion),
		token:  token,
	}
}

// SetEndpoint overrides the URL derived from the shop domain and API version.
func (s *ShopifyClient) SetEndpoint(url string) {
	s.url = url
}

// OrdersPage fetches one page of orders with nested line items. Cursor state
// belongs to the caller; the endCursor passes through untouched.
func (s ShopifyClient) OrdersPage(ctx context.Context, first int, after string) (model.OrdersPage, error) {
	body, err := s.makeRequest(ctx, first, after)
	if err != nil {
		s.logger.Errorf("OrdersPage error: %s", err.Error())
		return model.OrdersPage{}, ClassifyFetchErr(err)
	}

	res := ordersResponse{}

	err = json.Unmarshal(body, &res)
	if err != nil {
		s.logger.Errorf("OrdersPage error: %s", err.Error())
		return model.OrdersPage{}, err
	}

	if len(res.Errors) > 0 {
		msgs := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			msgs = append(msgs, e.Message)
		}
		err = fmt.Errorf("graphql: %s", strings.Join(msgs, "; "))
		s.logger.Errorf("OrdersPage error: %s", err.Error())
		return model.OrdersPage{}, ClassifyFetchErr(err)
	}

	page := model.OrdersPage{PageInfo: res.Data.Orders.PageInfo}
	for _, e := range res.Data.Orders.Edges {
		page.Orders = append(page.Orders, e.Node.toOrder())
	}
	return page, nil
}

func (s ShopifyClient) makeRequest(ctx context.Context, first int, after string) ([]byte, error) {
	payload := graphqlRequest{Query: ordersWithLinesQuery}
	payload.Variables.First = first
	if after != "" {
		payload.Variables.After = &after
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", s.token)

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %s\n%s", res.Status, buf.String())
	}

	return buf.Bytes(), nil
}

var permissionDeniedPhrases = []string{
	"not approved to access the order object",
	"access denied for orders field",
}

// ClassifyFetchErr is the only place that inspects upstream failure wording.
// A message matching a known entitlement phrase wraps ErrPermissionDenied;
// anything else passes through as the generic fetch failure.
// todo drop the phrase matching once the upstream API returns structured error codes
func ClassifyFetchErr(err error) error {
	msg := strings.ToLower(err.Error())
	for _, phrase := range permissionDeniedPhrases {
		if strings.Contains(msg, phrase) {
			return fmt.Errorf("%w: %s", ErrPermissionDenied, err)
		}
	}
	return err
}

type graphqlRequest struct {
	Query     string `json:"query"`
	Variables struct {
		First int     `json:"first"`
		After *string `json:"after"`
	} `json:"variables"`
}

type moneySet struct {
	ShopMoney model.Money `json:"shopMoney"`
}

type lineItemNode struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	SKU                  string    `json:"sku"`
	Quantity             int       `json:"quantity"`
	OriginalUnitPriceSet *moneySet `json:"originalUnitPriceSet"`
	DiscountedTotalSet   *moneySet `json:"discountedTotalSet"`
}

type orderNode struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CreatedAt     string          `json:"createdAt"`
	TotalPriceSet *moneySet       `json:"totalPriceSet"`
	Customer      *model.Customer `json:"customer"`
	LineItems     struct {
		Edges []struct {
			Node lineItemNode `json:"node"`
		} `json:"edges"`
	} `json:"lineItems"`
}

type ordersResponse struct {
	Data struct {
		Orders struct {
			PageInfo model.PageInfo `json:"pageInfo"`
			Edges    []struct {
				Node orderNode `json:"node"`
			} `json:"edges"`
		} `json:"orders"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (n orderNode) toOrder() model.Order {
	o := model.Order{ID: n.ID, Name: n.Name, CreatedAt: n.CreatedAt, Customer: n.Customer}

	if n.TotalPriceSet != nil {
		m := n.TotalPriceSet.ShopMoney
		o.Total = &m
	}

	for _, e := range n.LineItems.Edges {
		li := model.LineItem{
			ID:       e.Node.ID,
			Name:     e.Node.Name,
			SKU:      e.Node.SKU,
			Quantity: e.Node.Quantity,
		}
		if e.Node.OriginalUnitPriceSet != nil {
			m := e.Node.OriginalUnitPriceSet.ShopMoney
			li.UnitPrice = &m
		}
		if e.Node.DiscountedTotalSet != nil {
			m := e.Node.DiscountedTotalSet.ShopMoney
			li.LineTotal = &m
		}
		o.LineItems = append(o.LineItems, li)
	}

	return o
}
