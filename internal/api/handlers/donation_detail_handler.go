package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Blood-Donation-Admin/domain"
	"Blood-Donation-Admin/internal/api/presenters"
	"Blood-Donation-Admin/pkg/donationdetail"
)

type (
	DonationDetailHandler interface {
		GetDonationDetail(c *fiber.Ctx) error
		CreateDonationDetail(c *fiber.Ctx) error
		UpdateDonationDetail(c *fiber.Ctx) error
	}

	donationDetailHandler struct {
		donationDetailService donationdetail.DonationDetailService
		validator             *validator.Validate
	}
)

func NewDonationDetailHandler(donationDetailService donationdetail.DonationDetailService, validator *validator.Validate) DonationDetailHandler {
	return &donationDetailHandler{
		donationDetailService: donationDetailService,
		validator:             validator,
	}
}

func (h *donationDetailHandler) GetDonationDetail(c *fiber.Ctx) error {
	detail, err := h.donationDetailService.GetDonationDetailByAppointmentID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetDonationDetail, err)
	}

	return presenters.SuccessResponse(c, detail, fiber.StatusOK, domain.MessageSuccessGetDonationDetail)
}

func (h *donationDetailHandler) parseRequest(c *fiber.Ctx) (*domain.DonationDetailRequest, error) {
	req := new(domain.DonationDetailRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, err
	}
	if req.StaffID == "" {
		req.StaffID, _ = c.Locals("user_id").(string)
	}
	return req, nil
}

func (h *donationDetailHandler) CreateDonationDetail(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonationDetail, err)
	}

	detail, err := h.donationDetailService.CreateDonationDetail(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateDonationDetail, err)
	}

	return presenters.SuccessResponse(c, detail, fiber.StatusCreated, domain.MessageSuccessCreateDonationDetail)
}

func (h *donationDetailHandler) UpdateDonationDetail(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.AppointmentID = c.Params("id")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonationDetail, err)
	}

	detail, err := h.donationDetailService.UpdateDonationDetail(c.Context(), req.AppointmentID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateDonationDetail, err)
	}

	return presenters.SuccessResponse(c, detail, fiber.StatusOK, domain.MessageSuccessUpdateDonationDetail)
}
