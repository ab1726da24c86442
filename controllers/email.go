package controllers

import (
	"errors"

	"inventory/repository"

	"github.com/gofiber/fiber/v2"
)

// EmailSender delivers a rendered notification to one recipient.
type EmailSender interface {
	Send(to, subject, message string) error
}

// EmailContent is the caller-supplied part of a notification.
type EmailContent struct {
	Message string `json:"message"`
	Subject string `json:"subject"`
}

type EmailController struct {
	products  ProductStore
	suppliers SupplierStore
	mailer    EmailSender
}

func NewEmailController(products ProductStore, suppliers SupplierStore, mailer EmailSender) *EmailController {
	return &EmailController{products: products, suppliers: suppliers, mailer: mailer}
}

// SendToSupplier mails the supplier of a product. The supplier lookup
// should always succeed given the foreign key, but is checked anyway.
// A transport failure propagates; there is no retry.
func (ec *EmailController) SendToSupplier(c *fiber.Ctx) error {
	id, err := c.ParamsInt("product_id")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "product_id must be an integer"})
	}

	product, err := ec.products.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Product not found"})
		}
		return err
	}

	supplier, err := ec.suppliers.GetSupplier(product.SuppliedByID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Supplier not found"})
		}
		return err
	}

	var content EmailContent
	if err := c.BodyParser(&content); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := ec.mailer.Send(supplier.Email, content.Subject, content.Message); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
