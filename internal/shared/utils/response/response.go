package response

import "github.com/gin-gonic/gin"

// Envelope is the uniform body every handler writes. Status is derived
// from the HTTP code so handlers cannot disagree with themselves.
type Envelope struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}, errors interface{}) {
	status := "success"
	if code >= 400 {
		status = "error"
	}
	c.JSON(code, Envelope{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}
