package store

import "go-storefront/models"

func int64Ptr(v int64) *int64 { return &v }

// Categories is the static catalog section list
var Categories = []models.Category{
	{ID: "fotocopiadoras", Name: "Fotocopiadoras", Icon: "Printer"},
	{ID: "impresoras", Name: "Impresoras", Icon: "Printer"},
	{ID: "multifuncionales", Name: "Multifuncionales", Icon: "ScanLine"},
	{ID: "toner", Name: "Tóner y Consumibles", Icon: "Droplet"},
	{ID: "escaner", Name: "Escáneres", Icon: "ScanSearch"},
	{ID: "accesorios", Name: "Accesorios", Icon: "Settings"},
}

// Brands is the static brand list
var Brands = []string{"Canon"}

// DefaultProducts is the bundled catalog used until the admin saves its own
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:       "1",
			SKU:      "CANON-DX3835",
			Slug:     "canon-dx3835",
			Name:     "Canon imageRUNNER ADVANCE DX C3835i",
			Brand:    "Canon",
			Category: "multifuncionales",
			Price:    2890000,
			Stock:    5,
			Images: []string{
				"https://images.unsplash.com/photo-1612815154858-60aa4c59eaa6?w=500&h=500&fit=crop",
				"https://images.unsplash.com/photo-1611532736579-6b16e2b50449?w=500&h=500&fit=crop",
			},
			ShortDescription: "Multifuncional color de 35 ppm para grupos de trabajo medianos y grandes.",
			Specifications: map[string]string{
				"Velocidad":  "35 ppm",
				"Resolución": "1200 x 1200 dpi",
			},
			RelatedProducts: []string{"3"},
			IsFeatured:      true,
			IsNew:           true,
		},
		{
			ID:               "2",
			SKU:              "CANON-LBP623",
			Slug:             "canon-lbp623",
			Name:             "Canon imageCLASS LBP623Cdw",
			Brand:            "Canon",
			Category:         "impresoras",
			Price:            389990,
			SalePrice:        int64Ptr(349990),
			Stock:            12,
			Images:           []string{"https://images.unsplash.com/photo-1612815292890-fd55c355d8ab?w=500&h=500&fit=crop"},
			ShortDescription: "Impresora láser color con Wi-Fi y dúplex automático.",
			IsFeatured:       true,
		},
		{
			ID:               "3",
			SKU:              "CANON-GPR53",
			Slug:             "canon-gpr53",
			Name:             "Tóner Canon GPR-53 Negro",
			Brand:            "Canon",
			Category:         "toner",
			Price:            89990,
			Stock:            40,
			Images:           []string{"https://images.unsplash.com/photo-1563199284-752b7b17578a?w=500&h=500&fit=crop"},
			ShortDescription: "Tóner original de alto rendimiento.",
			RelatedProducts:  []string{"1"},
		},
		{
			ID:               "4",
			SKU:              "CANON-DR-C230",
			Slug:             "canon-dr-c230",
			Name:             "Canon imageFORMULA DR-C230",
			Brand:            "Canon",
			Category:         "escaner",
			Price:            549990,
			SalePrice:        int64Ptr(499990),
			Stock:            0,
			Images:           []string{"https://images.unsplash.com/photo-1587145820266-a5951ee6f620?w=500&h=500&fit=crop"},
			ShortDescription: "Escáner documental compacto de 30 ppm.",
			IsNew:            true,
		},
	}
}

// DefaultHeroSlides seeds the home carousel
func DefaultHeroSlides() []models.HeroSlide {
	return []models.HeroSlide{
		{ID: "1", Title: "Soluciones Canon para tu Empresa", Subtitle: "Equipos de impresión profesional y tecnología de imagen de última generación", Image: "/images/hero-1.jpg", ButtonText: "Ver Catálogo", ButtonLink: "/productos", Position: 1, Active: true},
		{ID: "2", Title: "Cámaras Profesionales", Subtitle: "Captura cada momento con la mejor tecnología", Image: "/images/hero-2.jpg", ButtonText: "Conocer Más", ButtonLink: "/productos", Position: 2, Active: true},
		{ID: "3", Title: "Impresoras Multifuncionales", Subtitle: "Eficiencia y calidad para tu negocio", Image: "/images/hero-3.jpg", ButtonText: "Ver Modelos", ButtonLink: "/productos", Position: 3, Active: true},
	}
}

// DefaultTestimonials seeds the testimonials section
func DefaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{ID: "1", Name: "Carlos Martínez", Company: "Empresa ABC", Position: "Gerente General", Message: "Excelente servicio y productos de alta calidad. Llevamos años trabajando con Hugo Díaz y siempre superan nuestras expectativas.", Rating: 5, Image: "/images/testimonials/client-1.jpg", Active: true, CreatedAt: "2024-01-15"},
		{ID: "2", Name: "María González", Company: "Tech Solutions", Position: "Directora de TI", Message: "Las impresoras Canon que adquirimos han mejorado significativamente nuestra productividad. El soporte técnico es excepcional.", Rating: 5, Image: "/images/testimonials/client-2.jpg", Active: true, CreatedAt: "2024-01-20"},
		{ID: "3", Name: "Roberto Silva", Company: "Constructora XYZ", Position: "Jefe de Operaciones", Message: "Muy buena atención y tiempos de respuesta rápidos en el servicio técnico.", Rating: 4, Image: "/images/testimonials/client-3.jpg", Active: true, CreatedAt: "2024-02-02"},
	}
}

// DefaultClients seeds the client logo strip
func DefaultClients() []models.ClientLogo {
	return []models.ClientLogo{
		{ID: "1", Name: "Canon", Logo: "/images/clients/canon.png", Website: "https://www.canon.cl", Category: "Fabricante", Active: true, Order: 1},
		{ID: "2", Name: "Ministerio de Salud", Logo: "/images/clients/minsal.png", Website: "https://www.minsal.cl", Category: "Sector Público", Active: true, Order: 2},
		{ID: "3", Name: "Universidad de Chile", Logo: "/images/clients/uchile.png", Website: "https://www.uchile.cl", Category: "Educación", Active: true, Order: 3},
		{ID: "4", Name: "Banco Estado", Logo: "/images/clients/bancoestado.png", Website: "https://www.bancoestado.cl", Category: "Banca", Active: true, Order: 4},
		{ID: "5", Name: "Codelco", Logo: "/images/clients/codelco.png", Website: "https://www.codelco.com", Category: "Minería", Active: true, Order: 5},
		{ID: "6", Name: "Clínica Alemana", Logo: "/images/clients/alemana.png", Website: "https://www.alemana.cl", Category: "Salud", Active: true, Order: 6},
	}
}

// DefaultSettings is the settings object restored by Reset
func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		CompanyName:         "Hugo Díaz y Cía.",
		CompanySlogan:       "Business Partner Canon Chile",
		CompanyDescription:  "Soluciones profesionales en equipos de impresión y tecnología de imagen Canon para empresas.",
		Email:               "contacto@hugodiaz.cl",
		Phone:               "+56 2 2345 6789",
		WhatsApp:            "+56912345678",
		Address:             "Av. Libertador Bernardo O'Higgins 1234",
		City:                "Santiago",
		Country:             "Chile",
		ScheduleWeekdays:    "Lunes a Viernes: 9:00 - 18:00",
		ScheduleSaturday:    "Sábado: 10:00 - 14:00",
		ScheduleSunday:      "Domingo: Cerrado",
		MetaTitle:           "Hugo Díaz y Cía. - Business Partner Canon Chile",
		MetaDescription:     "Equipos de impresión profesional y tecnología de imagen Canon. Soluciones para empresas con servicio técnico especializado.",
		MetaKeywords:        "canon, impresoras, copiadoras, multifuncionales, servicio técnico, business partner",
		BusinessPartnerText: "Business Partner Oficial de Canon Chile desde 1995",
		HeroAutoplaySpeed:   8000,
		ShowPromoBanner:     true,
		ShowTestimonials:    true,
		ShowClientLogos:     true,
	}
}
