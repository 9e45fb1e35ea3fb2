package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/buyitapp/buyit-server/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type LeadHandler struct {
	leadService *service.LeadService
}

func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

type SellerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BrandName   string `json:"brand_name"`
	Email       string `json:"email"`
	Product     string `json:"product"`
	SocialMedia string `json:"social_media"`
	Country     string `json:"country"`
	Interest    string `json:"interest"`
}

type BuyerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Product  string `json:"product"`
	Interest string `json:"interest"`
}

type ContactRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

const duplicateBookingMessage = "User has already been booked, cancel booking then create a new one"

func (h *LeadHandler) CreateSeller(w http.ResponseWriter, r *http.Request) {
	var req SellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.BrandName == "" || req.Email == "" ||
		req.Product == "" || req.SocialMedia == "" || req.Country == "" || req.Interest == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields", "MISSING_FIELDS")
		return
	}

	seller := &domain.Seller{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BrandName:   req.BrandName,
		Email:       req.Email,
		Product:     req.Product,
		SocialMedia: req.SocialMedia,
		Country:     req.Country,
		Interest:    req.Interest,
	}

	if err := h.leadService.CreateSeller(r.Context(), seller); err != nil {
		if dup, ok := domain.AsDuplicateLead(err); ok {
			respond(w, http.StatusConflict, response{
				Success: false,
				Message: duplicateBookingMessage,
				Error:   "DUPLICATE_BOOKING",
				ID:      dup.ExistingID.String(),
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "An error occurred", "INTERNAL_ERROR")
		return
	}

	respondOK(w, http.StatusCreated, "Seller created successfully", seller)
}

func (h *LeadHandler) CreateBuyer(w http.ResponseWriter, r *http.Request) {
	var req BuyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	if req.Name == "" || req.Email == "" || req.Product == "" || req.Interest == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields", "MISSING_FIELDS")
		return
	}

	buyer := &domain.Buyer{
		Name:     req.Name,
		Email:    req.Email,
		Product:  req.Product,
		Interest: req.Interest,
	}

	if err := h.leadService.CreateBuyer(r.Context(), buyer); err != nil {
		if dup, ok := domain.AsDuplicateLead(err); ok {
			respond(w, http.StatusConflict, response{
				Success: false,
				Message: duplicateBookingMessage,
				Error:   "DUPLICATE_BOOKING",
				ID:      dup.ExistingID.String(),
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "An error occurred", "INTERNAL_ERROR")
		return
	}

	respondOK(w, http.StatusCreated, "Booking created successfully", buyer)
}

func (h *LeadHandler) SendContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields", "MISSING_FIELDS")
		return
	}

	contact, err := h.leadService.CreateContact(r.Context(), req.FullName, req.Email, req.Message)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "An error occurred", "INTERNAL_ERROR")
		return
	}

	respondOK(w, http.StatusCreated, "Message sent successfully, check your email", contact)
}

// GetLead fetches one lead by id; the type query parameter picks the
// collection. Contact lookups include the owned message text.
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid lead id", "INVALID_ID")
		return
	}

	leadType := domain.LeadType(r.URL.Query().Get("type"))
	if !leadType.Valid() {
		respondError(w, http.StatusBadRequest, "Type must be one of SELLER, BUYER or CONTACT", "INVALID_TYPE")
		return
	}

	var record interface{}
	switch leadType {
	case domain.LeadTypeSeller:
		record, err = h.leadService.GetSeller(r.Context(), id)
	case domain.LeadTypeBuyer:
		record, err = h.leadService.GetBuyer(r.Context(), id)
	case domain.LeadTypeContact:
		record, err = h.leadService.GetContact(r.Context(), id)
	}
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "No record found with this ID", "NOT_FOUND")
			return
		}
		respondError(w, http.StatusInternalServerError, "An error occurred", "INTERNAL_ERROR")
		return
	}

	respondOK(w, http.StatusOK, "Fetched successfully", record)
}

func (h *LeadHandler) FetchAll(w http.ResponseWriter, r *http.Request) {
	collections, err := h.leadService.FetchAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "An error occurred", "INTERNAL_ERROR")
		return
	}
	respondOK(w, http.StatusOK, "Fetched successfully", collections)
}

func (h *LeadHandler) FetchMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.leadService.Messages(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "An error occurred", "INTERNAL_ERROR")
		return
	}
	respondOK(w, http.StatusOK, "Fetched successfully", messages)
}

func (h *LeadHandler) DeleteSeller(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid lead id", "INVALID_ID")
		return
	}

	seller, err := h.leadService.DeleteSeller(r.Context(), id)
	if err != nil {
		h.respondDeleteError(w, err)
		return
	}
	respondOK(w, http.StatusOK, "Booking cancelled", seller.BrandName)
}

func (h *LeadHandler) DeleteBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid lead id", "INVALID_ID")
		return
	}

	buyer, err := h.leadService.DeleteBuyer(r.Context(), id)
	if err != nil {
		h.respondDeleteError(w, err)
		return
	}
	respondOK(w, http.StatusOK, "Okay, thanks you can rebook now", buyer.Name)
}

func (h *LeadHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid lead id", "INVALID_ID")
		return
	}

	contact, err := h.leadService.DeleteContact(r.Context(), id)
	if err != nil {
		h.respondDeleteError(w, err)
		return
	}
	respondOK(w, http.StatusOK, "Message deleted", contact.Name)
}

func (h *LeadHandler) respondDeleteError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrLeadNotFound) {
		respondError(w, http.StatusNotFound, "No record found with this ID", "NOT_FOUND")
		return
	}
	respondError(w, http.StatusInternalServerError, "Error deleting record", "INTERNAL_ERROR")
}
