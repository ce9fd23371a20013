package handlers

import (
	"errors"
	"log"
	"todo-backend/internal/api/middleware"
	"todo-backend/internal/models"
	"todo-backend/internal/repo"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TestimonialHandler struct {
	testimonials repo.TestimonialRepoInterface
}

func NewTestimonialHandler(testimonials repo.TestimonialRepoInterface) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// Lengths are counted in characters, not bytes, so multi-byte text is not
// penalized.
func validateTestimonialFields(name, email *string, rating *int, message *string) string {
	if name != nil && (*name == "" || utf8.RuneCountInString(*name) > 100) {
		return "name must be between 1 and 100 characters"
	}
	if email != nil && utf8.RuneCountInString(*email) > 100 {
		return "email must be at most 100 characters"
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return "rating must be between 1 and 5"
	}
	if message != nil {
		if n := utf8.RuneCountInString(*message); n < 10 || n > 1000 {
			return "message must be between 10 and 1000 characters"
		}
	}
	return ""
}

// CreateTestimonial takes the owner from the token, not from a path segment.
func (h *TestimonialHandler) CreateTestimonial(c *fiber.Ctx) error {
	ownerID, ok := middleware.Subject(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"detail": "Authentication required",
		})
	}

	var dto struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Rating  int    `json:"rating"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if msg := validateTestimonialFields(&dto.Name, &dto.Email, &dto.Rating, &dto.Message); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": msg,
		})
	}

	testimonial := &models.Testimonial{
		UserID:  ownerID,
		Name:    dto.Name,
		Email:   dto.Email,
		Rating:  dto.Rating,
		Message: dto.Message,
	}
	if err := h.testimonials.Create(testimonial); err != nil {
		log.Println(err, "Error creating testimonial")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create testimonial",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

// ListAllTestimonials is the public, unauthenticated listing.
func (h *TestimonialHandler) ListAllTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.testimonials.ListAll()
	if err != nil {
		log.Println(err, "Error listing testimonials")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get testimonials",
		})
	}
	return c.Status(fiber.StatusOK).JSON(testimonials)
}

func (h *TestimonialHandler) ListTestimonials(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	testimonials, err := h.testimonials.ListByOwner(ownerID)
	if err != nil {
		log.Println(err, "Error listing testimonials")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get testimonials",
		})
	}
	return c.Status(fiber.StatusOK).JSON(testimonials)
}

func (h *TestimonialHandler) GetTestimonial(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	testimonialID, err := uuid.Parse(c.Params("testimonialId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid testimonial ID",
		})
	}

	testimonial, err := h.testimonials.GetByID(ownerID, testimonialID)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testimonial not found",
		})
	}
	if err != nil {
		log.Println(err, "Error getting testimonial")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get testimonial",
		})
	}

	return c.Status(fiber.StatusOK).JSON(testimonial)
}

func (h *TestimonialHandler) UpdateTestimonial(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	testimonialID, err := uuid.Parse(c.Params("testimonialId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid testimonial ID",
		})
	}

	var patch repo.TestimonialPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if msg := validateTestimonialFields(patch.Name, patch.Email, patch.Rating, patch.Message); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": msg,
		})
	}

	testimonial, err := h.testimonials.Update(ownerID, testimonialID, patch)
	if errors.Is(err, repo.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testimonial not found",
		})
	}
	if err != nil {
		log.Println(err, "Error updating testimonial")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update testimonial",
		})
	}

	return c.Status(fiber.StatusOK).JSON(testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c *fiber.Ctx) error {
	ownerID, _ := middleware.Subject(c)

	testimonialID, err := uuid.Parse(c.Params("testimonialId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid testimonial ID",
		})
	}

	deleted, err := h.testimonials.Delete(ownerID, testimonialID)
	if err != nil {
		log.Println(err, "Error deleting testimonial")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete testimonial",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testimonial not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Testimonial deleted successfully",
	})
}
