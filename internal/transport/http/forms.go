package http

import (
	"encoding/json"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/service"
	"github.com/pawpals/storefront/internal/ui"
)

// FormSuccessResponse carries a form's success message
//
// swagger:model
type FormSuccessResponse struct {
	// example: Thank you for your message! We will get back to you within 24 hours.
	Message string `json:"message"`
}

type FormHandler struct {
	formService service.FormService
	logger      hclog.Logger
	banners     map[string]*ui.StatusBanner
}

func NewFormHandler(fs service.FormService, log hclog.Logger) *FormHandler {
	flash := ui.NewScheduler()
	return &FormHandler{
		formService: fs,
		logger:      log,
		banners: map[string]*ui.StatusBanner{
			"contact": ui.NewStatusBanner("contact-success", flash),
			"login":   ui.NewStatusBanner("login-success", flash),
			"signup":  ui.NewStatusBanner("signup-success", flash),
		},
	}
}

// Banner returns the success banner of a form. A passing submit shows the
// success message on it; the banner clears itself after its display window.
func (h *FormHandler) Banner(form string) *ui.StatusBanner {
	return h.banners[form]
}

// SubmitContact handles POST /forms/contact
//
// swagger:route POST /forms/contact forms submitContact
//
// Validates a contact submission; nothing is stored either way.
//
// Responses:
//
//	200: formSuccessResponse
//	400: errorResponse
//	422: fieldErrorResponse
func (h *FormHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var sub service.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	message, fieldErrs := h.formService.SubmitContact(sub)
	h.respond(w, "contact", message, fieldErrs)
}

// SubmitLogin handles POST /forms/login
//
// swagger:route POST /forms/login forms submitLogin
//
// Validates a login submission; success is simulated, no credentials are
// checked or stored.
//
// Responses:
//
//	200: formSuccessResponse
//	400: errorResponse
//	422: fieldErrorResponse
func (h *FormHandler) SubmitLogin(w http.ResponseWriter, r *http.Request) {
	var sub service.LoginSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	message, fieldErrs := h.formService.SubmitLogin(sub)
	h.respond(w, "login", message, fieldErrs)
}

// SubmitSignup handles POST /forms/signup
//
// swagger:route POST /forms/signup forms submitSignup
//
// Validates a signup submission; success is simulated, no account is
// created.
//
// Responses:
//
//	200: formSuccessResponse
//	400: errorResponse
//	422: fieldErrorResponse
func (h *FormHandler) SubmitSignup(w http.ResponseWriter, r *http.Request) {
	var sub service.SignupSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	message, fieldErrs := h.formService.SubmitSignup(sub)
	h.respond(w, "signup", message, fieldErrs)
}

func (h *FormHandler) respond(w http.ResponseWriter, form string, message string, fieldErrs service.FieldErrors) {
	if len(fieldErrs) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(FieldErrorResponse{Errors: fieldErrs})
		return
	}

	h.banners[form].Show(message)
	json.NewEncoder(w).Encode(FormSuccessResponse{Message: message})
}
