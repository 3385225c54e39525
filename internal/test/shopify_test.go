package test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/VitaBrrevis/orders-export/internal"
)

const ordersPageBody = `{
  "data": {
    "orders": {
      "pageInfo": {"hasNextPage": true, "endCursor": "cursor-1"},
      "edges": [
        {
          "node": {
            "id": "o1",
            "name": "#1001",
            "createdAt": "2024-01-02T15:04:00Z",
            "totalPriceSet": {"shopMoney": {"amount": "19.98", "currencyCode": "USD"}},
            "customer": {"displayName": "Jane Roe", "email": "jane@example.com"},
            "lineItems": {
              "edges": [
                {
                  "node": {
                    "id": "li1",
                    "name": "Widget",
                    "sku": "W-1",
                    "quantity": 2,
                    "originalUnitPriceSet": {"shopMoney": {"amount": "9.99", "currencyCode": "USD"}},
                    "discountedTotalSet": {"shopMoney": {"amount": "19.98"}}
                  }
                }
              ]
            }
          }
        },
        {
          "node": {
            "id": "o2",
            "name": "#1002",
            "createdAt": "2024-01-03T10:00:00Z",
            "lineItems": {"edges": []}
          }
        }
      ]
    }
  }
}`

func newTestClient(url string) *internal.ShopifyClient {
	logger, _ := zap.NewDevelopment()
	c := internal.NewShopifyClient("example.myshopify.com", "2024-01", "shpat_test", logger.Sugar())
	c.SetEndpoint(url)
	return c
}

var _ = Describe("ShopifyClient", func() {
	Context("OrdersPage", func() {
		It("decodes a page of orders with nested line items", func() {
			var gotToken string
			var gotVars map[string]interface{}
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotToken = r.Header.Get("X-Shopify-Access-Token")
				var req struct {
					Variables map[string]interface{} `json:"variables"`
				}
				_ = json.NewDecoder(r.Body).Decode(&req)
				gotVars = req.Variables
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(ordersPageBody))
			}))
			defer ts.Close()

			page, err := newTestClient(ts.URL).OrdersPage(context.Background(), 25, "")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(gotToken).Should(Equal("shpat_test"))
			Expect(gotVars["first"]).Should(BeEquivalentTo(25))
			Expect(gotVars["after"]).Should(BeNil())

			Expect(page.PageInfo.HasNextPage).Should(BeTrue())
			Expect(page.PageInfo.EndCursor).Should(Equal("cursor-1"))
			Expect(page.Orders).Should(HaveLen(2))

			o := page.Orders[0]
			Expect(o.ID).Should(Equal("o1"))
			Expect(o.Name).Should(Equal("#1001"))
			Expect(o.Total.Amount).Should(Equal("19.98"))
			Expect(o.Customer.DisplayName).Should(Equal("Jane Roe"))
			Expect(o.LineItems).Should(HaveLen(1))
			Expect(o.LineItems[0].SKU).Should(Equal("W-1"))
			Expect(o.LineItems[0].UnitPrice.Amount).Should(Equal("9.99"))
			Expect(o.LineItems[0].LineTotal.Amount).Should(Equal("19.98"))

			Expect(page.Orders[1].LineItems).Should(HaveLen(0))
			Expect(page.Orders[1].Total).Should(BeNil())
		})
		It("passes the cursor through", func() {
			var gotVars map[string]interface{}
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					Variables map[string]interface{} `json:"variables"`
				}
				_ = json.NewDecoder(r.Body).Decode(&req)
				gotVars = req.Variables
				_, _ = w.Write([]byte(`{"data":{"orders":{"pageInfo":{"hasNextPage":false},"edges":[]}}}`))
			}))
			defer ts.Close()

			page, err := newTestClient(ts.URL).OrdersPage(context.Background(), 10, "cursor-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(gotVars["after"]).Should(Equal("cursor-1"))
			Expect(page.Orders).Should(HaveLen(0))
			Expect(page.PageInfo.HasNextPage).Should(BeFalse())
		})
		It("surfaces a non-200 response as a fetch failure", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}))
			defer ts.Close()

			_, err := newTestClient(ts.URL).OrdersPage(context.Background(), 25, "")
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrPermissionDenied)).Should(BeFalse())
		})
		It("classifies an entitlement failure in the graphql errors", func() {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"errors":[{"message":"This app is not approved to access the Order object."}]}`))
			}))
			defer ts.Close()

			_, err := newTestClient(ts.URL).OrdersPage(context.Background(), 25, "")
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrPermissionDenied)).Should(BeTrue())
		})
	})

	Context("ClassifyFetchErr", func() {
		It("matches the protected-data phrase", func() {
			err := internal.ClassifyFetchErr(errors.New(`GraphQL error: This app is not approved to access the Order object.`))
			Expect(errors.Is(err, internal.ErrPermissionDenied)).Should(BeTrue())
		})
		It("matches the scope phrase regardless of case", func() {
			err := internal.ClassifyFetchErr(errors.New("ACCESS DENIED FOR ORDERS FIELD"))
			Expect(errors.Is(err, internal.ErrPermissionDenied)).Should(BeTrue())
		})
		It("leaves unmatched failures as the generic case", func() {
			e := errors.New("HTTP 500 Internal Server Error")
			err := internal.ClassifyFetchErr(e)
			Expect(errors.Is(err, internal.ErrPermissionDenied)).Should(BeFalse())
			Expect(err).Should(Equal(e))
		})
		It("keeps the raw message for the banner", func() {
			err := internal.ClassifyFetchErr(errors.New("Access denied for orders field. Required access: read_orders"))
			Expect(err.Error()).Should(ContainSubstring("Required access: read_orders"))
		})
	})
})
