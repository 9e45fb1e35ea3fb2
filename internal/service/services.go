package service

import (
	"github.com/buyitapp/buyit-server/internal/advisor"
	"github.com/buyitapp/buyit-server/internal/config"
	"github.com/buyitapp/buyit-server/internal/mailer"
	"github.com/buyitapp/buyit-server/internal/repository"
	"github.com/rs/zerolog"
)

type Services struct {
	Auth    *AuthService
	Lead    *LeadService
	Advisor *advisor.Service
}

func NewServices(repos *repository.Repositories, mail mailer.Mailer, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, mail, cfg),
		Lead:    NewLeadService(repos.Seller, repos.Buyer, repos.Contact, mail, log),
		Advisor: advisor.NewService(advisor.NewClient(cfg.AdvisorBaseURL, cfg.AdvisorAPIKey, cfg.AdvisorModel)),
	}
}
