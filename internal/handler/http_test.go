package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/checkout-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var placed = entities.Order{
	ID:          42,
	UserID:      1,
	UserEmail:   "buyer@example.com",
	DatePlaced:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	Status:      entities.StatusProcessing,
	IsPickup:    true,
	TotalAmount: decimal.RequireFromString("59.97"),
	Items: []entities.Item{
		{ProductID: 10, Name: "Lamp", Quantity: 3, PurchasedPrice: decimal.RequireFromString("19.99")},
	},
	Payment: &entities.PaymentSummary{CardType: "VISA", Last4: "4242"},
}

func serve(t *testing.T, svc *mocks.MockOrderService, req *http.Request) (int, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func asUser(req *http.Request, id string) *http.Request {
	req.Header.Set("X-User-ID", id)
	return req
}

func asAdmin(req *http.Request) *http.Request {
	req.Header.Set("X-User-ID", "99")
	req.Header.Set("X-User-Role", "admin")
	return req
}

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	const validBody = `{"items":[{"productId":10,"quantity":3}],"isPickup":true}`

	testCases := []struct {
		name         string
		body         string
		userID       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			body:   validBody,
			userID: "1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, int64(1), mock.MatchedBy(func(req entities.PlaceOrderRequest) bool {
						return len(req.Items) == 1 && req.Items[0].Quantity == 3 && req.IdempotencyKey == "key-1"
					})).
					Return(placed, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"totalAmount":"59.97"`,
		},
		{
			name:       "missing identity",
			body:       validBody,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `X-User-ID`,
		},
		{
			name:       "unknown field",
			body:       `{"items":[{"productId":10,"quantity":3}],"coupon":"FREE"}`,
			userID:     "1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name:       "validation error",
			body:       `{"items":[{"productId":10,"quantity":0}],"isPickup":true}`,
			userID:     "1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"items[0].quantity":"required"`,
		},
		{
			name:       "bad last4",
			body:       `{"items":[{"productId":10,"quantity":1}],"isPickup":true,"newPaymentMethod":{"cardHolder":"A","cardType":"VISA","last4":"42","expiryDate":"12/30"}}`,
			userID:     "1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"newPaymentMethod.last4":"len"`,
		},
		{
			name:   "insufficient inventory",
			body:   validBody,
			userID: "1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceOrder(mock.Anything, int64(1), mock.Anything).
					Return(entities.Order{}, &entities.InsufficientInventoryError{ProductID: 10}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `product 10`,
		},
		{
			name:   "payment declined",
			body:   validBody,
			userID: "1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceOrder(mock.Anything, int64(1), mock.Anything).
					Return(entities.Order{}, entities.ErrPaymentDeclined).Once()
			},
			wantStatus: http.StatusPaymentRequired,
			wantBody:   `card declined`,
		},
		{
			name:   "dependency unavailable",
			body:   validBody,
			userID: "1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceOrder(mock.Anything, int64(1), mock.Anything).
					Return(entities.Order{}, entities.Unavailable(errors.New("connection reset"))).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `retry later`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("Idempotency-Key", "key-1")
			if tc.userID != "" {
				asUser(req, tc.userID)
			}

			status, body := serve(t, svc, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, float64(42), resp["id"])
				assert.Equal(t, map[string]any{"cardType": "VISA", "last4": "4242"}, resp["payment"])
			}
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Run("user sees own orders", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().GetOrdersByUser(mock.Anything, int64(1)).Return([]entities.Order{placed}, nil).Once()

		status, body := serve(t, svc, asUser(httptest.NewRequest(http.MethodGet, "/orders", nil), "1"))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"id":42`)
	})

	t.Run("admin gets a page", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().GetOrdersPage(mock.Anything, 2, 5).
			Return(entities.NewPage([]entities.Order{placed}, 6, 2, 5), nil).Once()

		status, body := serve(t, svc, asAdmin(httptest.NewRequest(http.MethodGet, "/orders?page=2&size=5", nil)))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"totalPages":2`)
		assert.Contains(t, body, `"totalElements":6`)
	})

	t.Run("admin bad page", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().GetOrdersPage(mock.Anything, 0, 20).
			Return(entities.Page[entities.Order]{}, entities.InvalidRequest("page and size must be positive")).Once()

		status, _ := serve(t, svc, asAdmin(httptest.NewRequest(http.MethodGet, "/orders?page=0", nil)))
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/orders/42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(42), entities.Caller{UserID: 1}).Return(placed, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Processing"`,
		},
		{
			name: "not found",
			path: "/orders/7",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(7), mock.Anything).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "foreign order",
			path: "/orders/42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(42), mock.Anything).Return(entities.Order{}, entities.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "bad id",
			path:       "/orders/abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `positive number`,
		},
		{
			name: "internal error",
			path: "/orders/42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(42), mock.Anything).Return(entities.Order{}, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			status, body := serve(t, svc, asUser(httptest.NewRequest(http.MethodGet, tc.path, nil), "1"))
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Transitions(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().CancelOrder(mock.Anything, int64(42), entities.Caller{UserID: 1}).Return(nil).Once()

		status, body := serve(t, svc, asUser(httptest.NewRequest(http.MethodPatch, "/orders/42/cancel", nil), "1"))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "canceled")
	})

	t.Run("cancel twice", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().CancelOrder(mock.Anything, int64(42), mock.Anything).Return(entities.ErrInvalidStateTransition).Once()

		status, _ := serve(t, svc, asUser(httptest.NewRequest(http.MethodPatch, "/orders/42/cancel", nil), "1"))
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("complete by user is forbidden", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)

		status, _ := serve(t, svc, asUser(httptest.NewRequest(http.MethodPatch, "/orders/42/complete", nil), "1"))
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("complete by admin", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().CompleteOrder(mock.Anything, int64(42), entities.Caller{UserID: 99, IsAdmin: true}).Return(nil).Once()

		status, body := serve(t, svc, asAdmin(httptest.NewRequest(http.MethodPatch, "/orders/42/complete", nil)))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "completed")
	})
}

func TestHTTPHandler_GetStats(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().GetStats(mock.Anything, 3).Return(entities.OrderStats{
		TotalSoldItems: 4,
		MostPopular:    []entities.ProductStat{{ProductID: 10, Name: "Lamp", Value: decimal.NewFromInt(4)}},
		MostProfitable: []entities.ProductStat{{ProductID: 10, Name: "Lamp", Value: decimal.RequireFromString("29.96")}},
	}, nil).Once()

	status, body := serve(t, svc, asAdmin(httptest.NewRequest(http.MethodGet, "/admin/stats", nil)))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"totalSoldItems":4`)
	assert.Contains(t, body, `"value":"29.96"`)

	status, _ = serve(t, mocks.NewMockOrderService(t), asUser(httptest.NewRequest(http.MethodGet, "/admin/stats", nil), "1"))
	assert.Equal(t, http.StatusForbidden, status)
}
