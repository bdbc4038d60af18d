package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/internal/middleware"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	headerIdempotencyKey = "Idempotency-Key"

	defaultPageSize   = 20
	defaultStatsLimit = 3
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, req entities.PlaceOrderRequest) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID int64, caller entities.Caller) error
	CompleteOrder(ctx context.Context, orderID int64, caller entities.Caller) error
	GetOrder(ctx context.Context, orderID int64, caller entities.Caller) (entities.Order, error)
	GetOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	GetOrdersPage(ctx context.Context, page, size int) (entities.Page[entities.Order], error)
	GetStats(ctx context.Context, limit int) (entities.OrderStats, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	validate := validator.New()
	// в ошибках валидации имена полей как в JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validate,
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Post("/orders", h.PlaceOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.GetOrder)
		r.Patch("/orders/{id}/cancel", h.CancelOrder)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Patch("/orders/{id}/complete", h.CompleteOrder)
			r.Get("/admin/stats", h.GetStats)
		})
	})
}

// PlaceOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Резервирует товары, авторизует оплату и сохраняет заказ. Повтор с тем же Idempotency-Key возвращает исходный заказ
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID        header    int                true   "ID пользователя"
// @Param        Idempotency-Key  header    string             false  "Ключ идемпотентности"
// @Param        request          body      PlaceOrderRequest  true   "Корзина"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      402  {object}  utils.ErrorResponse "Оплата отклонена"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь, товар, адрес или способ оплаты не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара"
// @Failure      503  {object}  utils.ErrorResponse "Зависимость недоступна"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := middleware.CallerFrom(ctx)

	var body PlaceOrderRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.PlaceOrder(ctx, caller.UserID, body.ToEntity(r.Header.Get(headerIdempotencyKey)))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders возвращает заказы.
// @Summary      Список заказов
// @Description  Администратор получает постраничный список всех заказов, пользователь только свои
// @Tags         orders
// @Produce      json
// @Param        X-User-ID    header  int     true   "ID пользователя"
// @Param        X-User-Role  header  string  false  "Роль (admin)"
// @Param        page         query   int     false  "Номер страницы, с 1"
// @Param        size         query   int     false  "Размер страницы"
// @Success      200  {object}  OrdersPage "Для администратора"
// @Success      200  {array}   Order "Для пользователя"
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := middleware.CallerFrom(ctx)

	if !caller.IsAdmin {
		orders, err := h.svc.GetOrdersByUser(ctx, caller.UserID)
		if err != nil {
			h.writeServiceError(ctx, w, err)
			return
		}
		utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
		return
	}

	page, err := queryInt(r, "page", 1)
	if err != nil {
		utils.WriteError(w, "page must be a number", http.StatusBadRequest)
		return
	}
	size, err := queryInt(r, "size", defaultPageSize)
	if err != nil {
		utils.WriteError(w, "size must be a number", http.StatusBadRequest)
		return
	}

	result, err := h.svc.GetOrdersPage(ctx, page, size)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, PageEntityToJSON(result), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  int  true  "ID пользователя"
// @Param        id         path    int  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := middleware.CallerFrom(ctx)

	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID, caller)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ и возвращает товары на склад.
// @Summary      Отменить заказ
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header  int  true  "ID пользователя"
// @Param        id         path    int  true  "ID заказа"
// @Success      200  {object}  utils.MessageResponse
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже завершён или отменён"
// @Router       /orders/{id}/cancel [patch]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := middleware.CallerFrom(ctx)

	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.CancelOrder(ctx, orderID, caller); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, utils.MessageResponse{Message: "Order canceled successfully"}, http.StatusOK)
}

// CompleteOrder завершает заказ.
// @Summary      Завершить заказ
// @Tags         admin
// @Produce      json
// @Param        X-User-ID    header  int     true  "ID администратора"
// @Param        X-User-Role  header  string  true  "admin"
// @Param        id           path    int     true  "ID заказа"
// @Success      200  {object}  utils.MessageResponse
// @Failure      403  {object}  utils.ErrorResponse "Нужна роль admin"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже завершён или отменён"
// @Router       /orders/{id}/complete [patch]
func (h *HTTPHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := middleware.CallerFrom(ctx)

	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.CompleteOrder(ctx, orderID, caller); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, utils.MessageResponse{Message: "Order completed successfully"}, http.StatusOK)
}

// GetStats возвращает статистику продаж.
// @Summary      Статистика продаж
// @Description  Считается только по завершённым заказам
// @Tags         admin
// @Produce      json
// @Param        X-User-ID    header  int     true   "ID администратора"
// @Param        X-User-Role  header  string  true   "admin"
// @Param        limit        query   int     false  "Размер топов"
// @Success      200  {object}  Stats
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      403  {object}  utils.ErrorResponse "Нужна роль admin"
// @Router       /admin/stats [get]
func (h *HTTPHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := queryInt(r, "limit", defaultStatsLimit)
	if err != nil {
		utils.WriteError(w, "limit must be a number", http.StatusBadRequest)
		return
	}

	stats, err := h.svc.GetStats(ctx, limit)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, StatsEntityToJSON(stats), http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusInternalServerError:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", status)
	case http.StatusServiceUnavailable:
		h.logger.WarnContext(ctx, "dependency unavailable", slog.Any("error", err))
		utils.WriteError(w, "service temporarily unavailable, retry later", status)
	default:
		utils.WriteError(w, err.Error(), status)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInsufficientInventory),
		errors.Is(err, entities.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, entities.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, entities.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "order id must be a positive number", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
