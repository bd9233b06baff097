package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/erikm/ecommerce-orders/internal/service"
	"github.com/erikm/ecommerce-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	OrderByUID(ctx context.Context, orderUID string) (entities.Order, error)
	EditOrderStatus(ctx context.Context, orderUID, statusName string) (entities.Status, error)
	CancelOrder(ctx context.Context, orderUID string) (entities.Order, error)
	ListOrders(ctx context.Context, page entities.PageParams) (entities.Page[entities.Order], error)
	OrdersByCustomer(ctx context.Context, customerID string, page entities.PageParams) (entities.Page[entities.Order], error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.CreateOrder)
			r.Get("/", h.ListOrders)
			r.Get("/{order_uid}", h.GetOrderByUID)
			r.Patch("/{order_uid}/status", h.EditOrderStatus)
			r.Delete("/{order_uid}", h.CancelOrder)
		})
		r.Get("/customers/{customer_id}/orders", h.OrdersByCustomer)
	})
}

// CreateOrder создаёт заказ.
// @Summary      Создать заказ
// @Description  Создаёт заказ с фиксацией цен; при нехватке остатков заказ получает статус PENDING
// @Tags         orders
// @Accept       json
// @Param        input  body  CreateOrderRequest  true  "Параметры заказа"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Клиент или товар не найден"
// @Failure      409  {object}  utils.ErrorResponse "Конфликт по остаткам"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.CreateOrderItem{SKU: it.SKU, Quantity: it.Quantity})
	}

	order, err := h.svc.CreateOrder(ctx, service.CreateOrderInput{
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	})
	if err != nil {
		ordersCreated.WithLabelValues("error").Inc()
		h.writeServiceError(ctx, w, err, "failed to create order")
		return
	}

	ordersCreated.WithLabelValues(string(order.Status)).Inc()
	orderCreateDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByUID возвращает заказ по UID.
// @Summary      Получить заказ по UID
// @Description  Возвращает информацию о заказе по его уникальному идентификатору
// @Tags         orders
// @Param        order_uid   path      string  true  "Уникальный идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_uid} [get]
func (h *HTTPHandler) GetOrderByUID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()

	if err := h.validate.Var(orderUID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.OrderByUID(ctx, orderUID)
	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		h.writeServiceError(ctx, w, err, "failed to get order")
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	orderRequestDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает страницу заказов.
// @Summary      Список заказов
// @Description  Возвращает заказы постранично, отсортированные по дате создания
// @Tags         orders
// @Param        limit   query  int  false  "Размер страницы"
// @Param        offset  query  int  false  "Смещение"
// @Success      200  {object}  OrdersPage
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.svc.ListOrders(ctx, pageParams(r))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, PageEntityToJSON(page), http.StatusOK)
}

// EditOrderStatus меняет статус заказа.
// @Summary      Сменить статус заказа
// @Description  Административная смена статуса; остатки не затрагиваются
// @Tags         orders
// @Accept       json
// @Param        order_uid  path  string             true  "Уникальный идентификатор заказа"
// @Param        input      body  EditStatusRequest  true  "Новый статус"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  utils.ErrorResponse "Неизвестный статус или запрещённый переход"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_uid}/status [patch]
func (h *HTTPHandler) EditOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	var req EditStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	status, err := h.svc.EditOrderStatus(ctx, orderUID, req.Status)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to edit order status")
		return
	}

	statusChanges.WithLabelValues(string(status)).Inc()
	utils.WriteJSON(w, StatusResponse{OrderUID: orderUID, Status: string(status)}, http.StatusOK)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Description  Отменяет заказ и возвращает списанные остатки на склад
// @Tags         orders
// @Param        order_uid  path  string  true  "Уникальный идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Заказ уже в терминальном статусе"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{order_uid} [delete]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	order, err := h.svc.CancelOrder(ctx, orderUID)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to cancel order")
		return
	}

	ordersCancelled.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// OrdersByCustomer возвращает заказы клиента.
// @Summary      Заказы клиента
// @Description  Возвращает заказы клиента постранично
// @Tags         customers
// @Param        customer_id  path   string  true   "Идентификатор клиента"
// @Param        limit        query  int     false  "Размер страницы"
// @Param        offset       query  int     false  "Смещение"
// @Success      200  {object}  OrdersPage
// @Failure      404  {object}  utils.ErrorResponse "Клиент не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/customers/{customer_id}/orders [get]
func (h *HTTPHandler) OrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	customerID := chi.URLParam(r, "customer_id")

	page, err := h.svc.OrdersByCustomer(ctx, customerID, pageParams(r))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get customer orders")
		return
	}

	utils.WriteJSON(w, PageEntityToJSON(page), http.StatusOK)
}

// writeServiceError переводит ошибки сервиса в HTTP статусы.
func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCustomerNotFound):
		utils.WriteError(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEmptyOrder):
		utils.WriteError(w, "order must contain at least one item", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidArgument):
		utils.WriteError(w, "invalid order parameters", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownStatus):
		utils.WriteError(w, "unknown order status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, "status transition is not allowed", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, "insufficient stock", http.StatusConflict)
	case errors.Is(err, entities.ErrConcurrencyConflict):
		utils.WriteError(w, "stock is being modified concurrently, retry later", http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func pageParams(r *http.Request) entities.PageParams {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	return entities.PageParams{Limit: limit, Offset: offset}.Normalize()
}
