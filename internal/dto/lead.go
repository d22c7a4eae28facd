package dto

type CreateLeadRequest struct {
	Title string  `json:"title"`
	Brand string  `json:"brand"`
	Model string  `json:"model"`
	Year  int     `json:"year"`
	Price float64 `json:"price"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	Notes string  `json:"notes,omitempty"`
}

type LeadResponse struct {
	ID           string `json:"id"`
	WhatsAppLink string `json:"whatsapp_link"`
	CreatedAt    string `json:"created_at"`
}
