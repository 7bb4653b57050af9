package structs

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}
