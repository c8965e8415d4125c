package database

// Repository is the full persistence surface the swap orchestrator consumes.
//
//go:generate go tool mockgen -destination=mock.go -package=database . Repository
type Repository interface {
	SwapRepository
	ReverseSwapRepository
	ReferralRepository
	ChannelCreationRepository
	KeyIndexRepository
}

var _ Repository = (*Database)(nil)
