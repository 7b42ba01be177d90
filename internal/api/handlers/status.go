package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Blood-Donation-Admin/domain"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrDonationDetailNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDonationDetailExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrDonationNotAllowed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidAppointmentStatus),
		errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrDonationDateBeforeAppointment),
		errors.Is(err, domain.ErrInvalidBloodType),
		errors.Is(err, domain.ErrInvalidVolume):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
