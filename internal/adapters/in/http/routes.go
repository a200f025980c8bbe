package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /orders)
	GetOrders(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/transitions)
	CanTransition(ctx echo.Context, params CanTransitionParams) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (PATCH /orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /customers)
	GetCustomers(ctx echo.Context) error
	// (GET /customers/{customerId})
	GetCustomer(ctx echo.Context, customerId openapi_types.UUID) error
	// (GET /customers/{customerId}/orders)
	GetCustomerOrders(ctx echo.Context, customerId openapi_types.UUID) error
	// (GET /products)
	GetProducts(ctx echo.Context, params GetProductsParams) error
	// (GET /products/categories)
	GetCategories(ctx echo.Context) error
	// (GET /products/{productId})
	GetProduct(ctx echo.Context, productId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) CanTransition(ctx echo.Context) error {
	var params CanTransitionParams

	err := runtime.BindQueryParameter("form", true, true, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.CanTransition(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetCustomers(ctx echo.Context) error {
	return w.Handler.GetCustomers(ctx)
}

func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	customerId, err := bindUUIDPathParam(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.GetCustomer(ctx, customerId)
}

func (w *ServerInterfaceWrapper) GetCustomerOrders(ctx echo.Context) error {
	customerId, err := bindUUIDPathParam(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.GetCustomerOrders(ctx, customerId)
}

func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	var params GetProductsParams

	err := runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	return w.Handler.GetProducts(ctx, params)
}

func (w *ServerInterfaceWrapper) GetCategories(ctx echo.Context) error {
	return w.Handler.GetCategories(ctx)
}

func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	productId, err := bindUUIDPathParam(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, productId)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL adds each server route to the router under baseURL.
// Static segments are registered before parameterized ones sharing a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/orders", wrapper.GetOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/transitions", wrapper.CanTransition)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.GET(baseURL+"/customers", wrapper.GetCustomers)
	router.GET(baseURL+"/customers/:customerId", wrapper.GetCustomer)
	router.GET(baseURL+"/customers/:customerId/orders", wrapper.GetCustomerOrders)
	router.GET(baseURL+"/products", wrapper.GetProducts)
	router.GET(baseURL+"/products/categories", wrapper.GetCategories)
	router.GET(baseURL+"/products/:productId", wrapper.GetProduct)
}
