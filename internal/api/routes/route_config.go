package routes

import (
	"github.com/gofiber/fiber/v2"

	"Blood-Donation-Admin/internal/api/handlers"
	"Blood-Donation-Admin/internal/middleware"
	"Blood-Donation-Admin/pkg/jwt"
)

type Config struct {
	App                   *fiber.App
	UserHandler           handlers.UserHandler
	AppointmentHandler    handlers.AppointmentHandler
	DonationDetailHandler handlers.DonationDetailHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Staff()
	c.Appointments()
	c.DonationDetails()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Staff() {
	staff := c.App.Group("/api/v1/staff")
	staff.Post("/login", c.UserHandler.Login)
	staff.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
}

func (c *Config) Appointments() {
	appointments := c.App.Group("/api/v1/appointments",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyStaff(),
	)
	appointments.Get("", c.AppointmentHandler.GetAppointments)
	appointments.Get("/export", c.AppointmentHandler.ExportAppointments)
	appointments.Get("/:id", c.AppointmentHandler.GetAppointmentByID)
	appointments.Patch("/:id/status", c.AppointmentHandler.UpdateAppointmentStatus)
	appointments.Get("/:id/donation-detail", c.DonationDetailHandler.GetDonationDetail)
	appointments.Put("/:id/donation-detail", c.DonationDetailHandler.UpdateDonationDetail)
}

func (c *Config) DonationDetails() {
	details := c.App.Group("/api/v1/donation-details",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyStaff(),
	)
	details.Post("", c.DonationDetailHandler.CreateDonationDetail)
}
