package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"campusevents/internal/handler"
	"campusevents/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	identity echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
	requestHandler *handler.RequestHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Identity resolution runs on every route, public ones included.
	e.Use(identity)

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public landing page: reports the resolved identity so a front end can
	// render the right navigation.
	e.GET("/", func(c echo.Context) error {
		page := echo.Map{"page": "index"}
		if user := middleware.CurrentUser(c); user != nil {
			page["student_id"] = user.StudentID
		}
		if admin := middleware.CurrentAdmin(c); admin != nil {
			page["admin"] = admin.Username
		}
		return c.JSON(http.StatusOK, page)
	})

	// Public auth routes
	e.GET("/user/register", authHandler.RegisterPage)
	e.POST("/user/register", authHandler.Register)
	e.GET("/user/login", authHandler.UserLoginPage)
	e.POST("/user/login", authHandler.UserLogin)
	e.GET("/admin/login", authHandler.AdminLoginPage)
	e.POST("/admin/login", authHandler.AdminLogin)
	e.GET("/logout", authHandler.Logout)

	// Student routes
	user := e.Group("/user", middleware.RequireUser)
	user.GET("/dashboard", dashboardHandler.UserDashboard)
	user.POST("/submit_request", requestHandler.SubmitRequest)

	// Admin routes
	admin := e.Group("/admin", middleware.RequireAdmin)
	admin.GET("/dashboard", dashboardHandler.AdminDashboard)
	admin.GET("/update_request_status/:id/:status", requestHandler.UpdateRequestStatus)
	admin.POST("/add_event", eventHandler.AddEvent)
	admin.GET("/edit_event/:id", eventHandler.EditEventForm)
	admin.POST("/edit_event/:id", eventHandler.EditEvent)
	admin.GET("/delete_event/:id", eventHandler.DeleteEvent)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
