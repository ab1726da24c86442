package controllers

import (
	"errors"

	"inventory/models"
	"inventory/repository"

	"github.com/gofiber/fiber/v2"
)

// SupplierStore is the slice of the repository the supplier handlers use.
type SupplierStore interface {
	CreateSupplier(*models.Supplier) error
	ListSuppliers() ([]models.Supplier, error)
	GetSupplier(id uint) (*models.Supplier, error)
	SaveSupplier(*models.Supplier) error
	DeleteSupplier(*models.Supplier) error
}

type SupplierController struct {
	store SupplierStore
}

func NewSupplierController(store SupplierStore) *SupplierController {
	return &SupplierController{store: store}
}

func (sc *SupplierController) Create(c *fiber.Ctx) error {
	var input models.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := input.ValidateCreate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": err.Error()})
	}

	var supplier models.Supplier
	supplier.Apply(input)
	if err := sc.store.CreateSupplier(&supplier); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "ok", "data": supplier})
}

func (sc *SupplierController) List(c *fiber.Ctx) error {
	suppliers, err := sc.store.ListSuppliers()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "ok", "data": suppliers})
}

func (sc *SupplierController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("supplier_id")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "supplier_id must be an integer"})
	}

	supplier, err := sc.store.GetSupplier(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Supplier not found"})
		}
		return err
	}

	return c.JSON(fiber.Map{"status": "ok", "data": supplier})
}

// Update replaces each field present in the request body and keeps the
// rest as stored.
func (sc *SupplierController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("supplier_id")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "supplier_id must be an integer"})
	}

	supplier, err := sc.store.GetSupplier(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Supplier not found"})
		}
		return err
	}

	var input models.SupplierInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	supplier.Apply(input)
	if err := sc.store.SaveSupplier(supplier); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "ok", "data": supplier})
}

// Delete removes the supplier; its products go with it (cascade).
func (sc *SupplierController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("supplier_id")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "supplier_id must be an integer"})
	}

	supplier, err := sc.store.GetSupplier(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Supplier not found"})
		}
		return err
	}

	if err := sc.store.DeleteSupplier(supplier); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
