package models

// HeroSlide is one slide of the home page carousel
type HeroSlide struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Image      string `json:"image"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	Position   int    `json:"position"`
	Active     bool   `json:"active"`
}

// Testimonial is a customer quote shown on the home page
type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Company   string `json:"company"`
	Position  string `json:"position"` // job title
	Message   string `json:"message"`
	Rating    int    `json:"rating"` // 1..5
	Image     string `json:"image"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"` // YYYY-MM-DD
}

// ClientLogo is a customer or partner logo in the clients strip
type ClientLogo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Website  string `json:"website"`
	Category string `json:"category"`
	Active   bool   `json:"active"`
	Order    int    `json:"order"`
}
