package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buyitapp/buyit-server/internal/domain"
	"github.com/buyitapp/buyit-server/internal/mailer"
	"github.com/buyitapp/buyit-server/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type LeadService struct {
	sellerRepo  repository.SellerRepository
	buyerRepo   repository.BuyerRepository
	contactRepo repository.ContactRepository
	mail        mailer.Mailer
	log         zerolog.Logger
}

func NewLeadService(
	sellerRepo repository.SellerRepository,
	buyerRepo repository.BuyerRepository,
	contactRepo repository.ContactRepository,
	mail mailer.Mailer,
	log zerolog.Logger,
) *LeadService {
	return &LeadService{
		sellerRepo:  sellerRepo,
		buyerRepo:   buyerRepo,
		contactRepo: contactRepo,
		mail:        mail,
		log:         log,
	}
}

// LeadCollections is the aggregate payload backing the admin dashboard.
type LeadCollections struct {
	Contacts []*domain.Contact `json:"contact"`
	Buyers   []*domain.Buyer   `json:"buyer"`
	Sellers  []*domain.Seller  `json:"seller"`
}

func (s *LeadService) CreateSeller(ctx context.Context, seller *domain.Seller) error {
	if existing, err := s.sellerRepo.GetByEmail(ctx, seller.Email); err == nil {
		return &domain.DuplicateLeadError{ExistingID: existing.ID}
	}

	seller.ID = uuid.New()
	seller.CreatedAt = time.Now()
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, lookupErr := s.sellerRepo.GetByEmail(ctx, seller.Email); lookupErr == nil {
				return &domain.DuplicateLeadError{ExistingID: existing.ID}
			}
		}
		return err
	}
	return nil
}

func (s *LeadService) CreateBuyer(ctx context.Context, buyer *domain.Buyer) error {
	if existing, err := s.buyerRepo.GetByEmail(ctx, buyer.Email); err == nil {
		return &domain.DuplicateLeadError{ExistingID: existing.ID}
	}

	buyer.ID = uuid.New()
	buyer.CreatedAt = time.Now()
	if err := s.buyerRepo.Create(ctx, buyer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, lookupErr := s.buyerRepo.GetByEmail(ctx, buyer.Email); lookupErr == nil {
				return &domain.DuplicateLeadError{ExistingID: existing.ID}
			}
		}
		return err
	}
	return nil
}

// CreateContact persists the message and sends the acknowledgement mail.
// A mail failure is logged but does not fail the submission.
func (s *LeadService) CreateContact(ctx context.Context, name, email, message string) (*domain.Contact, error) {
	contact := &domain.Contact{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Messages: []domain.ContactMessage{
			{ID: uuid.New(), Body: message},
		},
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	body := fmt.Sprintf(`Hi %s,

Thank you for contacting Buyit! We have received your message and our team will get back to you as soon as possible.

In the meantime, feel free to explore Buyit and get personalized business advice instantly.

Best regards,
The Buyit Team`, contact.Name)

	if err := s.mail.Send(contact.Email, "Thanks for reaching out to Buyit!", body); err != nil {
		s.log.Error().Err(err).Str("email", contact.Email).Msg("contact acknowledgement mail failed")
	}

	return contact, nil
}

func (s *LeadService) GetSeller(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return seller, nil
}

func (s *LeadService) GetBuyer(ctx context.Context, id uuid.UUID) (*domain.Buyer, error) {
	buyer, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return buyer, nil
}

func (s *LeadService) GetContact(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return contact, nil
}

// FetchAll returns every lead collection newest-first.
func (s *LeadService) FetchAll(ctx context.Context) (*LeadCollections, error) {
	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	buyers, err := s.buyerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sellers, err := s.sellerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return &LeadCollections{Contacts: contacts, Buyers: buyers, Sellers: sellers}, nil
}

func (s *LeadService) Messages(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.contactRepo.GetAllMessages(ctx)
}

func (s *LeadService) DeleteSeller(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	seller, err := s.sellerRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return seller, nil
}

func (s *LeadService) DeleteBuyer(ctx context.Context, id uuid.UUID) (*domain.Buyer, error) {
	buyer, err := s.buyerRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return buyer, nil
}

func (s *LeadService) DeleteContact(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return contact, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrLeadNotFound
	}
	return err
}
