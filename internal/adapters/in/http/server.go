// Package http exposes the order service as a REST API on echo.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a Server. logger is tagged with component=http.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// NewEcho builds an echo instance with request validation, swagger UI and every route mounted.
func NewEcho(ctx context.Context, server *Server) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.ERROR)
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server.Register(e.Group("/api/v1"))
	return e, nil
}

// Register mounts the API routes on g.
func (s *Server) Register(g *echo.Group) {
	g.POST("/accounts", s.RegisterAccount)
	g.POST("/accounts/:accountId/orders", s.CreateOrder)
	g.GET("/accounts/:accountId/orders", s.ListAccountOrders)
	g.GET("/orders/active", s.GetActiveOrders)
	g.GET("/orders/:orderId", s.GetOrder)
	g.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	g.GET("/packages/:packageCode", s.TrackPackage)
}

func bindID(c echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}

// RegisterAccount handles POST /api/v1/accounts.
func (s *Server) RegisterAccount(c echo.Context) error {
	var body NewAccount
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	home, err := body.HomeAddress.toDomain()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRegisterAccountCommand(body.FirstName, body.LastName, body.Email, home)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.RegisterAccount.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, AccountCreated{ID: id})
}

// CreateOrder handles POST /api/v1/accounts/{accountId}/orders. The body always carries
// the outcome message; the status code tells the outcomes apart.
func (s *Server) CreateOrder(c echo.Context) error {
	accountID, err := bindID(c, "accountId")
	if err != nil {
		return badRequest(c, "Invalid format for parameter accountId: "+err.Error())
	}

	var body NewOrder
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	destination, err := body.Destination.toDomain()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(accountID, destination)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	switch {
	case err == nil && result.Outcome == commands.OrderCreated:
		return c.JSON(http.StatusCreated, OrderOutcome{OrderID: &result.OrderID, Message: result.Message()})
	case err == nil && result.Outcome == commands.OrderRejectedOutOfRange:
		return c.JSON(http.StatusUnprocessableEntity, OrderOutcome{Message: result.Message()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, OrderOutcome{Message: result.Message()})
	default:
		s.logger.ErrorContext(c.Request().Context(), "order request failed",
			slog.Int64("account_id", accountID),
			slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, OrderOutcome{Message: result.Message()})
	}
}

// ListAccountOrders handles GET /api/v1/accounts/{accountId}/orders.
func (s *Server) ListAccountOrders(c echo.Context) error {
	accountID, err := bindID(c, "accountId")
	if err != nil {
		return badRequest(c, "Invalid format for parameter accountId: "+err.Error())
	}

	query, err := queries.NewListAccountOrdersQuery(accountID)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.ListAccountOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, ordersFromViews(views))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(c echo.Context) error {
	views, err := s.handlers.GetActiveOrders.Handle(c.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, ordersFromViews(views))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := bindID(c, "orderId")
	if err != nil {
		return badRequest(c, "Invalid format for parameter orderId: "+err.Error())
	}

	query, err := queries.NewFindOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.FindOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderFromView(view))
}

// TrackPackage handles GET /api/v1/packages/{packageCode}.
func (s *Server) TrackPackage(c echo.Context) error {
	query, err := queries.NewFindOrderByPackageCodeQuery(c.Param("packageCode"))
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.TrackPackage.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderFromView(view))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := bindID(c, "orderId")
	if err != nil {
		return badRequest(c, "Invalid format for parameter orderId: "+err.Error())
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
