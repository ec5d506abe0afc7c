package service

import (
	"github.com/salamaline/salama/internal/config"
	"github.com/salamaline/salama/internal/logger"
	"github.com/salamaline/salama/internal/store"
)

type Services struct {
	AppInfoService   AppInfoService
	CaseService      CaseService
	ConsentService   ConsentService
	RiskService      RiskService
	GuardrailService GuardrailService
	RetentionService RetentionService
	HandoffService   HandoffService
	SummaryService   SummaryService
}

func NewServices(storages store.Storages, summarizer Summarizer, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	consentService := NewConsentService(storages.CaseRepository, logger)

	return &Services{
		AppInfoService:   appInfoService,
		CaseService:      NewCaseService(storages.CaseRepository, logger),
		ConsentService:   consentService,
		RiskService:      NewRiskService(logger),
		GuardrailService: NewGuardrailService(logger),
		RetentionService: NewRetentionService(storages.CaseRepository, cfg.Retention, logger),
		HandoffService:   NewHandoffService(storages.CaseRepository, consentService, summarizer, logger),
		SummaryService:   NewSummaryService(summarizer, logger),
	}, nil
}
