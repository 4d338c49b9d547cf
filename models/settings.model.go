package models

// SiteSettings holds the general site configuration edited from the admin panel
type SiteSettings struct {
	CompanyName        string `json:"company_name"`
	CompanySlogan      string `json:"company_slogan"`
	CompanyDescription string `json:"company_description"`

	Email    string `json:"email"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`

	ScheduleWeekdays string `json:"schedule_weekdays"`
	ScheduleSaturday string `json:"schedule_saturday"`
	ScheduleSunday   string `json:"schedule_sunday"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`

	GoogleMapsURL       string `json:"google_maps_url"`
	BusinessPartnerText string `json:"business_partner_text"`
	HeroAutoplaySpeed   int    `json:"heroAutoplaySpeed,omitempty"` // milliseconds

	ShowPromoBanner  bool `json:"showPromoBanner"`
	ShowTestimonials bool `json:"showTestimonials"`
	ShowClientLogos  bool `json:"showClientLogos"`
}
