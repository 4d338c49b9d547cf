package controllers

import (
	"go-storefront/models"
	"go-storefront/store"
)

// ContentController serves the editable home page sections
type ContentController struct {
	Slides       *Resource[models.HeroSlide]
	Testimonials *Resource[models.Testimonial]
	Clients      *Resource[models.ClientLogo]
}

// NewContentController creates a new ContentController
func NewContentController(slides *store.SlideStore, testimonials *store.TestimonialStore, clients *store.ClientStore) *ContentController {
	return &ContentController{
		Slides:       &Resource[models.HeroSlide]{Name: "slide", Collection: slides.Collection},
		Testimonials: &Resource[models.Testimonial]{Name: "testimonial", Collection: testimonials.Collection},
		Clients:      &Resource[models.ClientLogo]{Name: "client", Collection: clients.Collection},
	}
}
