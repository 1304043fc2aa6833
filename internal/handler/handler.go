package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/infosoft-ph/video-rental-service/internal/errs"
	md "github.com/infosoft-ph/video-rental-service/pkg/middleware"
	"github.com/infosoft-ph/video-rental-service/pkg/validate"
)

type Handler struct {
	customerSvc CustomerService
	videoSvc    VideoService
	rentalSvc   RentalService
	reportSvc   ReportService
	log         *zap.Logger
}

func New(customerSvc CustomerService, videoSvc VideoService, rentalSvc RentalService, reportSvc ReportService, log *zap.Logger) *Handler {
	return &Handler{
		customerSvc: customerSvc,
		videoSvc:    videoSvc,
		rentalSvc:   rentalSvc,
		reportSvc:   reportSvc,
		log:         log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		md.NewRequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/customers", h.GetCustomers)
	api.GET("/customers/:id", h.GetCustomer)
	api.POST("/customers", h.CreateCustomer)
	api.PUT("/customers/:id", h.UpdateCustomer)
	api.DELETE("/customers/:id", h.DeleteCustomer)

	api.GET("/videos", h.GetVideos)
	api.GET("/videos/:id", h.GetVideo)
	api.POST("/videos", h.CreateVideo)
	api.PUT("/videos/:id", h.UpdateVideo)
	api.DELETE("/videos/:id", h.DeleteVideo)

	api.GET("/rentals", h.GetRentals)
	api.GET("/rentals/:id", h.GetRental)
	api.POST("/rentals/rent", h.RentVideo)
	api.PUT("/rentals/return/:id", h.ReturnVideo)

	api.GET("/reports/video-inventory", h.VideoInventoryReport)
	api.GET("/reports/customer-rentals/:customerId", h.CustomerRentalsReport)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

// httpError maps the domain taxonomy to status codes. Anything outside the
// taxonomy is logged and answered with a generic message so driver and SQL
// details never reach the client.
func (h *Handler) httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		h.log.Error("unexpected error", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
