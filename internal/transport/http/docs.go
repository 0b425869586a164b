// Package classification of PawPals Storefront API
//
// # Documentation for the PawPals Storefront API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors defined as an array of strings
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body ValidationError
}

// Per-field validation messages
// swagger:response fieldErrorResponse
type fieldErrorResponseWrapper struct {
	// One message per invalid field
	// in: body
	Body FieldErrorResponse
}

// The caller's cart with its order summary
// swagger:response cartResponse
type cartResponseWrapper struct {
	// The current cart
	// in: body
	Body CartResponse
}

// The checkout line list and totals
// swagger:response checkoutResponse
type checkoutResponseWrapper struct {
	// in: body
	Body CheckoutResponse
}

// A confirmed order
// swagger:response orderResponse
type orderResponseWrapper struct {
	// in: body
	Body OrderResponse
}

// A form's success message
// swagger:response formSuccessResponse
type formSuccessResponseWrapper struct {
	// in: body
	Body FormSuccessResponse
}

// The cart badge count
// swagger:response countResponse
type countResponseWrapper struct {
	// in: body
	Body struct {
		// example: 5
		Count int `json:"count"`
	}
}

// No content response for endpoints that return 204
// swagger:response noContentResponse
type noContentResponseWrapper struct{}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`
}

// ValidationError defines the structure for API validation error responses
//
// swagger:model
type ValidationError struct {
	// The validation errors
	//
	// required: true
	Messages []string `json:"messages"`
}
