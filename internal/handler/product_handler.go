package handler

import (
	"os"
	"path"
	"path/filepath"

	"go-products-api/internal/form"
	"go-products-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service   service.ProductService
	uploadDir string
}

func NewProductHandler(s service.ProductService, uploadDir string) *ProductHandler {
	return &ProductHandler{service: s, uploadDir: uploadDir}
}

// CreateForm renders the empty product form.
// GET /api/v1/products/create
func (h *ProductHandler) CreateForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"form": fiber.Map{"fields": form.Fields()}})
}

// Create binds the submission to the product form, validates it, and
// persists the entity stamped with the requesting user.
// POST /api/v1/products/create
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	f := form.New(c.FormValue("nombre"), c.FormValue("descripcion"), c.FormValue("precio"))
	if fileHeader, err := c.FormFile("imagen"); err == nil {
		f.Imagen = fileHeader
	}

	if fieldErrors := f.Validate(); fieldErrors != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Error creating product",
			"fields": fieldErrors,
			"values": f.Values(),
		})
	}

	product := f.Product()

	if f.Imagen != nil {
		if err := os.MkdirAll(filepath.Join(h.uploadDir, "products"), 0o755); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to store uploaded image"})
		}
		stored := path.Join("products", uuid.New().String()+filepath.Ext(f.Imagen.Filename))
		if err := c.SaveFile(f.Imagen, filepath.Join(h.uploadDir, stored)); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to store uploaded image"})
		}
		product.Imagen = &stored
	}

	userID, err := uuid.Parse(getUserID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.CreateProduct(product, userID, getUsername(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created successfully", "data": product})
}
