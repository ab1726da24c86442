package routes

import (
	"inventory/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, suppliers *controllers.SupplierController, products *controllers.ProductController, emails *controllers.EmailController) {
	app.Get("/", controllers.Index)

	// suppliers
	app.Post("/supplier", suppliers.Create)
	app.Get("/supplier", suppliers.List)
	app.Get("/supplier/:supplier_id", suppliers.Get)
	app.Put("/supplier/:supplier_id", suppliers.Update)
	app.Delete("/supplier/:supplier_id", suppliers.Delete)

	// products
	app.Post("/product/:supplier_id", products.Create)
	app.Get("/product", products.List)
	app.Get("/product/:id", products.Get)
	app.Put("/product/:id", products.Update)
	app.Delete("/product/:id", products.Delete)

	// notifications
	app.Post("/email/:product_id", emails.SendToSupplier)
}
