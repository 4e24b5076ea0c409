package dto

import "github.com/AlMamunFarhad/job-portal/internal/validator"

// StatusResponse is the AJAX-flow envelope: status=true with an empty
// error map on success, status=false with field errors otherwise.
type StatusResponse struct {
	Status bool                  `json:"status"`
	Errors validator.FieldErrors `json:"errors"`
	Data   interface{}           `json:"data,omitempty"`
}

func OK() StatusResponse {
	return StatusResponse{Status: true, Errors: validator.FieldErrors{}}
}

func OKWith(data interface{}) StatusResponse {
	return StatusResponse{Status: true, Errors: validator.FieldErrors{}, Data: data}
}

func Failed(errors validator.FieldErrors) StatusResponse {
	return StatusResponse{Status: false, Errors: errors}
}

// Page wraps a paginated listing.
type Page struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	LastPage int         `json:"last_page"`
}

func NewPage(items interface{}, total int64, page, pageSize int) Page {
	lastPage := int((total + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}
	return Page{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		LastPage: lastPage,
	}
}
