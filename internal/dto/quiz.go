package dto

// GenerateQuizRequest is the raw body of POST /generate-quiz. Fields are left
// untyped so the sanitizer can coerce whatever the client sent.
// @Description Quiz generation request
type GenerateQuizRequest struct {
	Title        interface{} `json:"title" swaggertype:"string" example:"Photosynthesis Quiz"`
	SourceText   interface{} `json:"sourceText" swaggertype:"string"`
	NumQuestions interface{} `json:"numQuestions" swaggertype:"integer" example:"10"`
	Difficulty   interface{} `json:"difficulty" swaggertype:"string" example:"medium"`
	Mode         interface{} `json:"mode" swaggertype:"string" example:"mixed"`
	GradeLevel   interface{} `json:"gradeLevel" swaggertype:"string" example:"high"`
	Explanations interface{} `json:"explanations" swaggertype:"boolean" example:"true"`
}

// GenerationStats is the usage summary attached to a generation response.
type GenerationStats struct {
	TotalGenerations int64 `json:"total_generations"`
}

// GenerateQuizResponse is returned by POST /generate-quiz
// @Description Generated quiz text
type GenerateQuizResponse struct {
	Output string           `json:"output"`
	Title  string           `json:"title,omitempty"`
	Stats  *GenerationStats `json:"stats,omitempty"`
}

// ExportRequest is the body of POST /export-docx
// @Description Export request
type ExportRequest struct {
	OutputText string      `json:"outputText"`
	Filename   interface{} `json:"filename" swaggertype:"string" example:"Photosynthesis Quiz"`
}

// HourCount is one hourly usage bucket.
type HourCount struct {
	Hour  string `json:"hour" example:"2024-03-09T14"`
	Count int64  `json:"count"`
}

// StatsResponse is returned by GET /stats
// @Description Usage statistics
type StatsResponse struct {
	TotalGenerations int64       `json:"total_generations"`
	Last24Hours      []HourCount `json:"last_24_hours"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Counters string `json:"counters,omitempty" example:"ok"`
}
