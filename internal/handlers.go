package internal

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const permissionDeniedHint = "No access to Protected Customer Data (Orders). Check the app's access request and scopes."

type Handlers struct {
	Service  IService
	logger   *zap.SugaredLogger
	validate *validator.Validate
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger, validate: NewValidator()}
}

func (h *Handlers) CreateSession(c *fiber.Ctx) error {
	var i SessionInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on session request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := h.validate.Struct(i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on session request", "data": err.Error()})
	}

	t, err := h.Service.IssueSession(i.Key)
	if err != nil {
		h.logger.Errorf("Error on session request: %s", err.Error())
		if errors.Is(err, ErrInvalidCredentials) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) RequireSession(c *fiber.Ctx) error {
	if err := h.Service.VerifySession(c.Cookies("token")); err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.Next()
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	first, _ := strconv.Atoi(c.Query("first"))
	after := c.Query("after")

	page, err := h.Service.GetOrdersPage(c.Context(), first, after)
	if err != nil {
		h.logger.Errorf("Error on orders request: %s", err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(fetchFailure(err))
	}

	return c.Status(fiber.StatusOK).JSON(h.Service.TableRows(page))
}

func (h *Handlers) ExportOrders(c *fiber.Ctx) error {
	var i ExportInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on export request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := h.validate.Struct(i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on export request", "data": err.Error()})
	}

	page, err := h.Service.GetOrdersPage(c.Context(), i.First, i.After)
	if err != nil {
		h.logger.Errorf("Error on export request: %s", err.Error())
		return c.Status(fiber.StatusBadGateway).JSON(fetchFailure(err))
	}

	filename, csv, err := h.Service.ExportCSV(page.Orders, i.IDs, i.Profile)
	if err != nil {
		h.logger.Errorf("Error on export request: %s", err.Error())
		if errors.Is(err, ErrUnknownProfile) {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	exportID := uuid.NewString()
	h.logger.Infof("export %s: %d orders selected, file %s", exportID, len(i.IDs), filename)

	c.Set("X-Export-Id", exportID)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).SendString(csv)
}

// fetchFailure shapes the error banner payload: the raw message plus the
// permission-denied flag, with a remediation hint when entitlement is the cause.
func fetchFailure(err error) fiber.Map {
	out := fiber.Map{"message": err.Error(), "permissionDenied": false}
	if errors.Is(err, ErrPermissionDenied) {
		out["permissionDenied"] = true
		out["hint"] = permissionDeniedHint
	}
	return out
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:    "token",
		Value:   token,
		Path:    "/",
		Expires: time.Now().Add(12 * time.Hour),
	}

	c.Cookie(cookie)
}
