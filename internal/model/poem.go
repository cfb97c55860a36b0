package model

// PoemGenerateRequest represents the request body for poem generation
type PoemGenerateRequest struct {
	UserInput string `json:"userInput" validate:"required"`
	Theme     string `json:"theme"`
}

// PoemGenerateResponse represents the response for a generated poem.
// Theme echoes the caller's theme string as received; the moodverse
// fallback affects template choice only.
type PoemGenerateResponse struct {
	Success   bool   `json:"success"`
	Poem      string `json:"poem"`
	Theme     string `json:"theme"`
	Timestamp string `json:"timestamp"`
}
