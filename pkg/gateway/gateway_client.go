package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"Blood-Donation-Admin/domain"
)

// knownErrors are the domain errors the API reports by message.
var knownErrors = []error{
	domain.ErrAppointmentNotFound,
	domain.ErrInvalidAppointmentStatus,
	domain.ErrInvalidSortKey,
	domain.ErrDonationDetailNotFound,
	domain.ErrDonationDetailExists,
	domain.ErrDonationNotAllowed,
	domain.ErrDonationDateBeforeAppointment,
	domain.ErrInvalidBloodType,
	domain.ErrInvalidVolume,
	domain.ErrInvalidCredentials,
	domain.ErrUserNotAllowed,
	domain.ErrTokenExpired,
	domain.ErrTokenInvalid,
	domain.ErrTokenNotFound,
	domain.ErrParseUUID,
}

// RequestError is a non-2xx answer from the admin API.
type RequestError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("admin api: %d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("admin api: %d %s", e.StatusCode, e.Message)
}

// Unwrap returns the domain error named by Detail, if any.
func (e *RequestError) Unwrap() error {
	for _, known := range knownErrors {
		if known.Error() == e.Detail {
			return known
		}
	}
	return nil
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client talks to the admin API on behalf of one signed-in staff member.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger

	mu      sync.RWMutex
	staffID string
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		logger:     logger,
	}
}

// Login signs in and uses the issued token for every later request.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(domain.LoginRequest{Email: email, Password: password}).
		Post("/api/v1/staff/login")

	var res domain.LoginResponse
	if err := c.decode("login", resp, err, &res); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.staffID = res.UserID
	c.mu.Unlock()
	c.httpClient.SetAuthToken(res.Token)

	c.logger.Info("signed in to admin api", zap.String("user_id", res.UserID), zap.String("role", res.Role))
	return &res, nil
}

// StaffID is the user id of the signed-in staff member.
func (c *Client) StaffID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.staffID
}

func (c *Client) FetchAppointments(ctx context.Context) ([]domain.Appointment, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("sort", string(domain.SortByStatus)).
		Get("/api/v1/appointments")

	var appointments []domain.Appointment
	if err := c.decode("fetch appointments", resp, err, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(domain.UpdateAppointmentStatusRequest{Status: status}).
		Patch("/api/v1/appointments/{id}/status")

	return c.decode("update appointment status", resp, err, nil)
}

// FetchDonationDetail returns domain.ErrDonationDetailNotFound when nothing
// is recorded for the appointment.
func (c *Client) FetchDonationDetail(ctx context.Context, appointmentID string) (*domain.DonationDetail, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", appointmentID).
		Get("/api/v1/appointments/{id}/donation-detail")

	var detail domain.DonationDetail
	if err := c.decode("fetch donation detail", resp, err, &detail); err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
			return nil, domain.ErrDonationDetailNotFound
		}
		return nil, err
	}
	return &detail, nil
}

func (c *Client) CreateDonationDetail(ctx context.Context, req domain.DonationDetailRequest) (*domain.DonationDetail, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/v1/donation-details")

	var detail domain.DonationDetail
	if err := c.decode("create donation detail", resp, err, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) UpdateDonationDetail(ctx context.Context, appointmentID string, req domain.DonationDetailRequest) (*domain.DonationDetail, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", appointmentID).
		SetBody(req).
		Put("/api/v1/appointments/{id}/donation-detail")

	var detail domain.DonationDetail
	if err := c.decode("update donation detail", resp, err, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ExportAppointments downloads the XLSX export of the list view.
func (c *Client) ExportAppointments(ctx context.Context, search string, sort domain.SortKey) ([]byte, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search": search,
			"sort":   string(sort),
		}).
		Get("/api/v1/appointments/export")
	if err != nil {
		return nil, fmt.Errorf("export appointments: %w", err)
	}
	if resp.IsError() {
		return nil, c.decode("export appointments", resp, nil, nil)
	}
	return resp.Body(), nil
}

// decode unwraps the response envelope into out. out may be nil.
func (c *Client) decode(op string, resp *resty.Response, err error, out any) error {
	if err != nil {
		c.logger.Error("admin api call failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	var env envelope
	if body := resp.Body(); len(body) > 0 {
		if jsonErr := json.Unmarshal(body, &env); jsonErr != nil && resp.IsSuccess() {
			return fmt.Errorf("%s: decode response: %w", op, jsonErr)
		}
	}

	if !resp.IsSuccess() || !env.Status {
		reqErr := &RequestError{
			StatusCode: resp.StatusCode(),
			Message:    env.Message,
			Detail:     env.Error,
		}
		c.logger.Warn("admin api returned error",
			zap.String("op", op),
			zap.Int("status_code", reqErr.StatusCode),
			zap.String("message", reqErr.Message),
			zap.String("detail", reqErr.Detail),
		)
		return reqErr
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", op, err)
	}
	return nil
}
