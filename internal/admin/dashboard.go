package admin

import (
	"sort"
	"strings"
	"time"

	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/buyitapp/buyit-server/internal/service"
	"github.com/google/uuid"
)

// PageSize is the dashboard table's fixed page length.
const PageSize = 10

// Kind tags a dashboard row. SIGNUP covers platform accounts, which the
// dashboard lists alongside the three lead kinds.
type Kind string

const (
	KindSeller  Kind = "SELLER"
	KindBuyer   Kind = "BUYER"
	KindContact Kind = "CONTACT"
	KindSignup  Kind = "SIGNUP"
)

// Record is one row of the unified dashboard table. Exactly one of the
// typed detail fields is set, selected by Type.
type Record struct {
	Type      Kind            `json:"type"`
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	CreatedAt time.Time       `json:"createdAt"`
	Seller    *domain.Seller  `json:"seller,omitempty"`
	Buyer     *domain.Buyer   `json:"buyer,omitempty"`
	Contact   *domain.Contact `json:"contact,omitempty"`
	Signup    *domain.User    `json:"signup,omitempty"`
}

// Merge unions leads and signups into a single newest-first collection.
func Merge(leads *service.LeadCollections, users []*domain.User) []Record {
	var records []Record

	for _, s := range leads.Sellers {
		records = append(records, Record{
			Type:      KindSeller,
			ID:        s.ID,
			Name:      s.FirstName + " " + s.LastName,
			Email:     s.Email,
			CreatedAt: s.CreatedAt,
			Seller:    s,
		})
	}
	for _, b := range leads.Buyers {
		records = append(records, Record{
			Type:      KindBuyer,
			ID:        b.ID,
			Name:      b.Name,
			Email:     b.Email,
			CreatedAt: b.CreatedAt,
			Buyer:     b,
		})
	}
	for _, c := range leads.Contacts {
		records = append(records, Record{
			Type:      KindContact,
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			CreatedAt: c.CreatedAt,
			Contact:   c,
		})
	}
	for _, u := range users {
		records = append(records, Record{
			Type:      KindSignup,
			ID:        u.ID,
			Name:      u.FirstName + " " + u.LastName,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
			Signup:    u,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records
}

// Filter keeps records whose name or email contains query, case-insensitive.
// An empty query keeps everything.
func Filter(records []Record, query string) []Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}

	var out []Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.Email), query) {
			out = append(out, r)
		}
	}
	return out
}

// Paginate returns the 1-based page of records and the total page count.
// Out-of-range pages are clamped.
func Paginate(records []Record, page int) ([]Record, int) {
	totalPages := (len(records) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	return records[start:end], totalPages
}
