package engagement

type Service struct {
	repo  LedgerRepo
	clock Clock
}

func New(repo LedgerRepo, clock Clock) *Service {
	return &Service{repo: repo, clock: clock}
}
