package handler

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type NewsResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Teaser  string `json:"teaser"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

type CreateNewsResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Item    NewsResponse `json:"item"`
}

type DocumentResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
	Version string `json:"version"`
}
