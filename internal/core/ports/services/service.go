package services

// ServiceContainer holds all the application services.
type ServiceContainer struct {
	BusinessSvc    BusinessService
	BusinessTxnSvc BusinessTxnService
	CashbookSvc    CashbookService
	CategorySvc    CategoryService
	TreasurerSvc   TreasurerService
	ReportSvc      ReportService
	UserSvc        UserService
	GoogleOAuthSvc GoogleOAuthService
}
