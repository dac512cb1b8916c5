package matchresponse

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/livescore/internal/scoring"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type jsonSuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type jsonErrorResponse struct {
	Status  string      `json:"status"` // "error" for client faults, "fail" for server faults
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Kind    string      `json:"kind,omitempty"`
	Reason  string      `json:"reason,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type jsonPaginatedResponse struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data"`
	Pagination pagination  `json:"pagination"`
}

type pagination struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func statusText(code int) string {
	if code >= http.StatusInternalServerError {
		return "fail"
	}
	return "error"
}

// ErrorResponse aborts with a plain error body.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, jsonErrorResponse{
		Status:  statusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

var statusByKind = map[scoring.Kind]int{
	scoring.KindNotFound:      http.StatusNotFound,
	scoring.KindValidation:    http.StatusBadRequest,
	scoring.KindState:         http.StatusConflict,
	scoring.KindNothingToUndo: http.StatusConflict,
	scoring.KindStorage:       http.StatusInternalServerError,
}

// StatusForError returns the HTTP status a scoring error is reported with.
func StatusForError(err error) int {
	if status, ok := statusByKind[scoring.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ScoringErrorResponse reports a scoring.Error with its kind and reason code,
// plus the offending field and the expected value when known.
func ScoringErrorResponse(c *gin.Context, err error) {
	var se *scoring.Error
	if !errors.As(err, &se) {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	statusCode := StatusForError(err)
	body := jsonErrorResponse{
		Status:  statusText(statusCode),
		Message: se.Message,
		Code:    statusCode,
		Kind:    string(se.Kind),
		Reason:  string(se.Code),
	}
	if se.Field != "" || se.Expected != "" {
		detail := gin.H{}
		if se.Field != "" {
			detail["field"] = se.Field
		}
		if se.Expected != "" {
			detail["expected"] = se.Expected
		}
		body.Errors = detail
	}
	c.AbortWithStatusJSON(statusCode, body)
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("The %s field is required.", fe.Field())
		case "min":
			msg = fmt.Sprintf("The %s field must be at least %s.", fe.Field(), fe.Param())
		case "max":
			msg = fmt.Sprintf("The %s field must not exceed %s.", fe.Field(), fe.Param())
		case "oneof":
			msg = fmt.Sprintf("The %s field must be one of: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
		default:
			msg = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", fe.Field(), fe.Tag())
		}
		out[strings.ToLower(fe.Field())] = msg
	}
	return out
}

// ValidationErrorResponse reports a binding failure. Validator errors are
// broken down per field; anything else is a malformed payload.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, jsonErrorResponse{
			Status:  "error",
			Message: "Validation failed. Please check your input.",
			Code:    http.StatusBadRequest,
			Errors:  formatValidationErrors(ve),
		})
		return
	}
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// SuccessResponse wraps data in the success envelope. A gin.H carrying a
// string "message" has it lifted to the top level.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	payload := jsonSuccessResponse{Status: "success", Data: data}
	if gh, ok := data.(gin.H); ok {
		if msg, isStr := gh["message"].(string); isStr {
			payload.Message = msg
			rest := gin.H{}
			for k, v := range gh {
				if k != "message" {
					rest[k] = v
				}
			}
			payload.Data = nil
			if len(rest) > 0 {
				payload.Data = rest
			}
		}
	}
	c.JSON(statusCode, payload)
}

// PaginatedResponse sends one page of items with its position in the full
// list. A non-positive pageSize falls back to 10.
func PaginatedResponse(c *gin.Context, statusCode int, items interface{}, currentPage, pageSize int, totalItems int64) {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	p := pagination{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		HasNextPage: currentPage < totalPages,
		HasPrevPage: currentPage > 1 && currentPage <= totalPages,
	}
	if p.HasNextPage {
		next := currentPage + 1
		p.NextPage = &next
	}
	if p.HasPrevPage {
		prev := currentPage - 1
		p.PreviousPage = &prev
	}
	c.JSON(statusCode, jsonPaginatedResponse{Status: "success", Data: items, Pagination: p})
}
