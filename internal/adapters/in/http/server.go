package http

import (
	"context"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	OrderStatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	OrderFinder interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.OrderView, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderView, error)
	}
	CustomerOrderLister interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.OrderView, error)
	}
	TransitionChecker interface {
		Handle(query queries.CanTransitionQuery) (bool, error)
	}
	ProductLister interface {
		Handle(ctx context.Context, query queries.GetProductsQuery) ([]queries.ProductView, error)
	}
	ProductFinder interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (*queries.ProductView, error)
	}
	CategoryLister interface {
		Handle(ctx context.Context, query queries.GetCategoriesQuery) ([]string, error)
	}
	CustomerReader interface {
		HandleList(ctx context.Context, query queries.GetCustomersQuery) ([]queries.CustomerView, error)
		HandleOne(ctx context.Context, query queries.GetCustomerQuery) (*queries.CustomerView, error)
	}
)

// Handlers groups the use cases the HTTP adapter dispatches to.
type Handlers struct {
	CreateOrder       OrderCreator
	ChangeOrderStatus OrderStatusChanger
	GetOrder          OrderFinder
	GetAllOrders      OrderLister
	GetCustomerOrders CustomerOrderLister
	CanTransition     TransitionChecker
	GetProducts       ProductLister
	GetProduct        ProductFinder
	GetCategories     CategoryLister
	Customers         CustomerReader
}

// Server implements ServerInterface by translating wire types to commands and
// queries and read models back to wire types.
type Server struct {
	h Handlers
}

var _ ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	views, err := s.h.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// CreateOrder handles POST /api/v1/orders. The order id is generated here and the
// stored order is read back for the response.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]services.OrderLine, len(body.Items))
	for i, item := range body.Items {
		lines[i] = services.OrderLine{ProductID: toKernelUUID(item.ProductId), Quantity: item.Quantity}
	}
	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, toKernelUUID(body.CustomerId), body.ShippingAddress, notes, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// CanTransition handles GET /api/v1/orders/transitions.
func (s *Server) CanTransition(ctx echo.Context, params CanTransitionParams) error {
	allowed, err := s.h.CanTransition.Handle(queries.NewCanTransitionQuery(params.From, params.To))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, TransitionCheck{From: params.From, To: params.To, Allowed: allowed})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.respondWithOrder(ctx, http.StatusOK, toKernelUUID(orderId))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id := toKernelUUID(orderId)
	cmd, err := commands.NewChangeOrderStatusCommand(id, body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if view == nil {
		return writeError(ctx, errs.NewObjectNotFoundError("order", orderID.String()))
	}

	return ctx.JSON(code, toOrder(*view))
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	views, err := s.h.Customers.HandleList(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Customer, len(views))
	for i, v := range views {
		response[i] = toCustomer(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/{customerId}.
func (s *Server) GetCustomer(ctx echo.Context, customerId openapi_types.UUID) error {
	id := toKernelUUID(customerId)
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.h.Customers.HandleOne(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if view == nil {
		return writeError(ctx, errs.NewObjectNotFoundError("customer", id.String()))
	}
	return ctx.JSON(http.StatusOK, toCustomer(*view))
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context, customerId openapi_types.UUID) error {
	query, err := queries.NewGetCustomerOrdersQuery(toKernelUUID(customerId))
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.h.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(ctx echo.Context, params GetProductsParams) error {
	var category string
	if params.Category != nil {
		category = *params.Category
	}

	views, err := s.h.GetProducts.Handle(ctx.Request().Context(), queries.NewGetProductsQuery(category))
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Product, len(views))
	for i, v := range views {
		response[i] = toProduct(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCategories handles GET /api/v1/products/categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	categories, err := s.h.GetCategories.Handle(ctx.Request().Context(), queries.NewGetCategoriesQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, categories)
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id := toKernelUUID(productId)
	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if view == nil {
		return writeError(ctx, errs.NewObjectNotFoundError("product", id.String()))
	}
	return ctx.JSON(http.StatusOK, toProduct(*view))
}

// toKernelUUID yields the zero UUID for uuid.Nil so constructors report the field as missing.
func toKernelUUID(id openapi_types.UUID) kernel.UUID {
	k, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return k
}

func toOrders(views []queries.OrderView) []Order {
	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func toOrder(v queries.OrderView) Order {
	items := make([]OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = OrderItem{
			ProductId:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			LineTotal:   item.LineTotal.StringFixed(2),
		}
	}

	return Order{
		Id:              v.ID.Bytes(),
		CustomerId:      v.CustomerID.Bytes(),
		CustomerName:    v.CustomerName,
		OrderDate:       v.OrderDate,
		Status:          v.Status,
		TotalAmount:     v.TotalAmount.StringFixed(2),
		ShippingAddress: v.ShippingAddress,
		Notes:           v.Notes,
		Items:           items,
	}
}

func toProduct(v queries.ProductView) Product {
	return Product{
		Id:          v.ID.Bytes(),
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price.StringFixed(2),
		Stock:       v.Stock,
		Category:    v.Category,
	}
}

func toCustomer(v queries.CustomerView) Customer {
	return Customer{
		Id:        v.ID.Bytes(),
		FullName:  v.FullName,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
}
