package store

import (
	"strings"
	"time"

	"go-storefront/models"
	"go-storefront/storage"
)

// SlideStore manages the home carousel slides
type SlideStore struct {
	*Collection[models.HeroSlide]
}

func NewSlideStore(slots storage.Slots) *SlideStore {
	return &SlideStore{NewCollection(slots, Schema[models.HeroSlide]{
		Key:      storage.KeyHeroSlides,
		Defaults: DefaultHeroSlides,
		ID:       func(s *models.HeroSlide) *string { return &s.ID },
		Order:    func(s *models.HeroSlide) *int { return &s.Position },
		Active:   func(s *models.HeroSlide) *bool { return &s.Active },
		Prepare: func(s *models.HeroSlide) {
			s.Title = strings.TrimSpace(s.Title)
			s.Image = strings.TrimSpace(s.Image)
			if s.ButtonLink == "" {
				s.ButtonLink = "/"
			}
		},
		Validate: func(s *models.HeroSlide) error {
			if s.Title == "" || s.Image == "" {
				return required("slide", "Title and image are required")
			}
			return nil
		},
	})}
}

// TestimonialStore manages customer testimonials
type TestimonialStore struct {
	*Collection[models.Testimonial]
}

func NewTestimonialStore(slots storage.Slots) *TestimonialStore {
	return &TestimonialStore{NewCollection(slots, Schema[models.Testimonial]{
		Key:      storage.KeyTestimonials,
		Defaults: DefaultTestimonials,
		ID:       func(t *models.Testimonial) *string { return &t.ID },
		Active:   func(t *models.Testimonial) *bool { return &t.Active },
		Prepare: func(t *models.Testimonial) {
			t.Name = strings.TrimSpace(t.Name)
			t.Company = strings.TrimSpace(t.Company)
			t.Message = strings.TrimSpace(t.Message)
			switch {
			case t.Rating <= 0:
				t.Rating = 5
			case t.Rating > 5:
				t.Rating = 5
			}
			if t.CreatedAt == "" {
				t.CreatedAt = time.Now().Format("2006-01-02")
			}
		},
		Validate: func(t *models.Testimonial) error {
			if t.Name == "" || t.Company == "" || t.Message == "" {
				return required("testimonial", "Name, company and message are required")
			}
			return nil
		},
	})}
}

// ClientStore manages the client logo strip
type ClientStore struct {
	*Collection[models.ClientLogo]
}

func NewClientStore(slots storage.Slots) *ClientStore {
	return &ClientStore{NewCollection(slots, Schema[models.ClientLogo]{
		Key:      storage.KeyClients,
		Defaults: DefaultClients,
		ID:       func(c *models.ClientLogo) *string { return &c.ID },
		Order:    func(c *models.ClientLogo) *int { return &c.Order },
		Active:   func(c *models.ClientLogo) *bool { return &c.Active },
		Prepare: func(c *models.ClientLogo) {
			c.Name = strings.TrimSpace(c.Name)
			c.Logo = strings.TrimSpace(c.Logo)
		},
		Validate: func(c *models.ClientLogo) error {
			if c.Name == "" || c.Logo == "" {
				return required("client", "Name and logo are required")
			}
			return nil
		},
	})}
}
