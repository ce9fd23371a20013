package routes

import (
	"todo-backend/internal/handlers"
	"todo-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerTestimonials covers the unauthenticated surface: public listing,
// plus creation where the owner comes from the token alone.
func registerTestimonials(r fiber.Router, db *gorm.DB, requireAuth fiber.Handler) *handlers.TestimonialHandler {
	testimonialHandler := handlers.NewTestimonialHandler(repo.NewTestimonialRepository(db))

	r.Get("/testimonials", testimonialHandler.ListAllTestimonials)
	r.Post("/testimonials", requireAuth, testimonialHandler.CreateTestimonial)

	return testimonialHandler
}

func registerOwnerTestimonials(owner fiber.Router, testimonialHandler *handlers.TestimonialHandler) {
	owner.Get("/testimonials", testimonialHandler.ListTestimonials)
	owner.Get("/testimonials/:testimonialId", testimonialHandler.GetTestimonial)
	owner.Put("/testimonials/:testimonialId", testimonialHandler.UpdateTestimonial)
	owner.Delete("/testimonials/:testimonialId", testimonialHandler.DeleteTestimonial)
}
