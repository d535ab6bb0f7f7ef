package v1

type ChatPost struct {
	Message string `json:"message,omitempty"`
	ChatId  string `json:"chat_id,omitempty"`
}

// ChatResponse keeps image_url as an explicit null when no image was produced.
type ChatResponse struct {
	Response string  `json:"response"`
	ImageUrl *string `json:"image_url"`
	NewTitle string  `json:"new_title"`
}
