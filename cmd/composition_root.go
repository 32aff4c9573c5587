package cmd

import (
	"log/slog"

	foodsharehttp "foodshare/internal/adapters/in/http"
	"foodshare/internal/adapters/out/postgres"
	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/application/usecases/queries"
	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and background jobs together.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) donationUoWFactory() commands.DonationUoWFactory {
	return FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDonationCommandHandler() commands.CreateDonationCommandHandler {
	return commands.NewCreateDonationCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateCreateDonationBatchCommandHandler() commands.CreateDonationBatchCommandHandler {
	return commands.NewCreateDonationBatchCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateReserveDonationCommandHandler() commands.ReserveDonationCommandHandler {
	return commands.NewReserveDonationCommandHandler(
		c.donationUoWFactory(), donation.NewRandomCodeGenerator())
}

func (c *CompositionRoot) CreateBusinessDecisionCommandHandler() commands.BusinessDecisionCommandHandler {
	return commands.NewBusinessDecisionCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.donationUoWFactory())
}

func (c *CompositionRoot) CreateListDonationsQueryHandler() queries.ListDonationsQueryHandler {
	return queries.NewListDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyDonationsQueryHandler() queries.GetMyDonationsQueryHandler {
	return queries.NewGetMyDonationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDonationStatsQueryHandler() queries.GetDonationStatsQueryHandler {
	return queries.NewGetDonationStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusBreakdownQueryHandler() queries.GetStatusBreakdownQueryHandler {
	return queries.NewGetStatusBreakdownQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the HTTP server over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *foodsharehttp.Server {
	return foodsharehttp.NewServer(
		c.CreateCreateDonationCommandHandler(),
		c.CreateCreateDonationBatchCommandHandler(),
		c.CreateReserveDonationCommandHandler(),
		c.CreateBusinessDecisionCommandHandler(),
		c.CreateConfirmPickupCommandHandler(),
		c.CreateListDonationsQueryHandler(),
		c.CreateGetMyDonationsQueryHandler(),
		c.CreateGetDonationStatsQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStatusBreakdownQueryHandler(), logger)
}

type FuncDonationUoWFactory func() commands.DonationUoW

func (f FuncDonationUoWFactory) Create() commands.DonationUoW {
	return f()
}
