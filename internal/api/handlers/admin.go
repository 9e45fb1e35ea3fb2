package handlers

import (
	"net/http"
	"strconv"

	"github.com/buyitapp/buyit-server/internal/admin"
	"github.com/buyitapp/buyit-server/internal/service"
)

type AdminHandler struct {
	leadService *service.LeadService
	authService *service.AuthService
}

func NewAdminHandler(leadService *service.LeadService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{leadService: leadService, authService: authService}
}

type SummaryResponse struct {
	Records    []admin.Record `json:"records"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Total      int            `json:"total"`
}

// Summary backs the dashboard's unified table: all leads and recent signups
// merged newest-first, filtered by the query, one fixed-size page at a time.
func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadService.FetchAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "An error occurred", "INTERNAL_ERROR")
		return
	}
	users, err := h.authService.RecentUsers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "An error occurred", "INTERNAL_ERROR")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	records := admin.Filter(admin.Merge(leads, users), r.URL.Query().Get("query"))
	total := len(records)
	pageRecords, totalPages := admin.Paginate(records, page)
	if page > totalPages {
		page = totalPages
	}

	respondOK(w, http.StatusOK, "Fetched successfully", SummaryResponse{
		Records:    pageRecords,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	})
}
