package handlers

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Blood-Donation-Admin/domain"
	"Blood-Donation-Admin/internal/api/presenters"
	"Blood-Donation-Admin/internal/utils/storage"
	"Blood-Donation-Admin/pkg/appointment"
	"Blood-Donation-Admin/pkg/report"
)

type (
	AppointmentHandler interface {
		GetAppointments(c *fiber.Ctx) error
		GetAppointmentByID(c *fiber.Ctx) error
		UpdateAppointmentStatus(c *fiber.Ctx) error
		ExportAppointments(c *fiber.Ctx) error
	}

	appointmentHandler struct {
		appointmentService appointment.AppointmentService
		reportService      report.ReportService
		validator          *validator.Validate
	}
)

func NewAppointmentHandler(appointmentService appointment.AppointmentService, reportService report.ReportService, validator *validator.Validate) AppointmentHandler {
	return &appointmentHandler{
		appointmentService: appointmentService,
		reportService:      reportService,
		validator:          validator,
	}
}

func (h *appointmentHandler) listRequest(c *fiber.Ctx) (domain.ListAppointmentsRequest, error) {
	req := domain.ListAppointmentsRequest{
		Search: c.Query("search"),
		Sort:   domain.SortKey(c.Query("sort", string(domain.SortByStatus))),
	}
	return req, h.validator.Struct(req)
}

func (h *appointmentHandler) GetAppointments(c *fiber.Ctx) error {
	req, err := h.listRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAppointments, err)
	}

	appointments, err := h.appointmentService.GetAppointments(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetAppointments, err)
	}

	return presenters.SuccessResponse(c, appointments, fiber.StatusOK, domain.MessageSuccessGetAppointments)
}

func (h *appointmentHandler) GetAppointmentByID(c *fiber.Ctx) error {
	appt, err := h.appointmentService.GetAppointmentByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetAppointments, err)
	}

	return presenters.SuccessResponse(c, appt, fiber.StatusOK, domain.MessageSuccessGetAppointments)
}

func (h *appointmentHandler) UpdateAppointmentStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateAppointmentStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAppointment, err)
	}

	if err := h.appointmentService.UpdateAppointmentStatus(c.Context(), c.Params("id"), *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateAppointment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateAppointment)
}

// ExportAppointments streams the list view as XLSX, or stores it in S3 when archive=true.
func (h *appointmentHandler) ExportAppointments(c *fiber.Ctx) error {
	req, err := h.listRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportAppointments, err)
	}

	if c.QueryBool("archive") {
		res, err := h.reportService.ArchiveAppointments(c.Context(), req)
		if err != nil {
			return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedExportAppointments, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessExportAppointments)
	}

	file, _, err := h.reportService.ExportAppointments(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedExportAppointments, err)
	}

	c.Set(fiber.HeaderContentType, storage.ContentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="appointments-%s.xlsx"`, time.Now().Format("20060102")))
	return c.Status(fiber.StatusOK).Send(file)
}
