package repo

import (
	"errors"
	"time"
	"todo-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Rating  *int    `json:"rating"`
	Message *string `json:"message"`
}

type TestimonialRepo struct {
	db *gorm.DB
}

type TestimonialRepoInterface interface {
	Create(testimonial *models.Testimonial) error
	ListAll() ([]models.Testimonial, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Testimonial, error)
	GetByID(ownerID, testimonialID uuid.UUID) (*models.Testimonial, error)
	Update(ownerID, testimonialID uuid.UUID, patch TestimonialPatch) (*models.Testimonial, error)
	Delete(ownerID, testimonialID uuid.UUID) (bool, error)
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepoInterface {
	return &TestimonialRepo{db: db}
}

func (r *TestimonialRepo) Create(testimonial *models.Testimonial) error {
	testimonial.ID = uuid.New()
	testimonial.CreatedAt = time.Now()
	testimonial.UpdatedAt = time.Now()
	return r.db.Create(testimonial).Error
}

// ListAll returns testimonials across all users for the public listing.
func (r *TestimonialRepo) ListAll() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("created_at desc").Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepo) ListByOwner(ownerID uuid.UUID) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Where("user_id = ?", ownerID).Order("created_at desc").Find(&testimonials).Error
	return testimonials, err
}

func (r *TestimonialRepo) GetByID(ownerID, testimonialID uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.Where("id = ? AND user_id = ?", testimonialID, ownerID).First(&testimonial).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *TestimonialRepo) Update(ownerID, testimonialID uuid.UUID, patch TestimonialPatch) (*models.Testimonial, error) {
	testimonial, err := r.GetByID(ownerID, testimonialID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.Message != nil {
		updates["message"] = *patch.Message
	}

	if err := r.db.Model(testimonial).Updates(updates).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (r *TestimonialRepo) Delete(ownerID, testimonialID uuid.UUID) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", testimonialID, ownerID).Delete(&models.Testimonial{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
