package services

import (
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, renderer portssvc.ReportRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.BusinessSvc = NewBusinessService(
		repos.BusinessRepo,
		WithBusinessTxnReader(repos.BusinessTxnRepo),
	)
	container.BusinessTxnSvc = NewBusinessTxnService(repos.BusinessTxnRepo, repos.BusinessRepo)
	container.CashbookSvc = NewCashbookService(repos.CashbookRepo, repos.CategoryRepo)
	container.CategorySvc = NewCategoryService(repos.CategoryRepo)
	container.TreasurerSvc = NewTreasurerService(repos.TreasurerRepo, repos.SignatureStore)
	container.ReportSvc = NewReportService(repos, renderer)
	container.UserSvc = NewUserService(repos.UserRepo)
	container.GoogleOAuthSvc = NewGoogleOAuthService(cfg, repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BusinessService    = (*businessService)(nil)
	_ portssvc.BusinessTxnService = (*businessTxnService)(nil)
	_ portssvc.CashbookService    = (*cashbookService)(nil)
	_ portssvc.CategoryService    = (*categoryService)(nil)
	_ portssvc.TreasurerService   = (*treasurerService)(nil)
	_ portssvc.ReportService      = (*reportService)(nil)
	_ portssvc.UserService        = (*userService)(nil)
	_ portssvc.GoogleOAuthService = (*googleOAuthService)(nil)
)
