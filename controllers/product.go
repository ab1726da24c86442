package controllers

import (
	"errors"

	"inventory/models"
	"inventory/repository"

	"github.com/gofiber/fiber/v2"
)

// ProductStore is the slice of the repository the product handlers use.
type ProductStore interface {
	CreateProduct(*models.Product) error
	ListProducts() ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	SaveProduct(*models.Product) error
	DeleteProduct(*models.Product) error
}

type ProductController struct {
	store     ProductStore
	suppliers SupplierStore
}

func NewProductController(store ProductStore, suppliers SupplierStore) *ProductController {
	return &ProductController{store: store, suppliers: suppliers}
}

// Create adds a product under an existing supplier. Revenue starts at
// quantity_sold * unit_price.
func (pc *ProductController) Create(c *fiber.Ctx) error {
	supplierID, err := c.ParamsInt("supplier_id")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "supplier_id must be an integer"})
	}

	supplier, err := pc.suppliers.GetSupplier(uint(supplierID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Supplier not found"})
		}
		return err
	}

	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := input.ValidateCreate(); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": err.Error()})
	}

	product := models.NewProduct(input, supplier.ID)
	if err := pc.store.CreateProduct(&product); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "ok", "data": product})
}

func (pc *ProductController) List(c *fiber.Ctx) error {
	products, err := pc.store.ListProducts()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"status": "ok", "data": products})
}

func (pc *ProductController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "id must be an integer"})
	}

	product, err := pc.store.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Product not found"})
		}
		return err
	}

	return c.JSON(fiber.Map{"status": "ok", "data": product})
}

// Update applies the paired accumulation rule; see models.Product.ApplyUpdate.
func (pc *ProductController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "id must be an integer"})
	}

	product, err := pc.store.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Product not found"})
		}
		return err
	}

	var input models.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	product.ApplyUpdate(input)
	if err := pc.store.SaveProduct(product); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "ok", "data": product})
}

func (pc *ProductController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "id must be an integer"})
	}

	product, err := pc.store.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Product not found"})
		}
		return err
	}

	if err := pc.store.DeleteProduct(product); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
