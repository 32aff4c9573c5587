package http

import (
	"net/http"

	"foodshare/internal/core/application/usecases/commands"
	"foodshare/internal/core/application/usecases/queries"
	"foodshare/internal/core/domain/model/donation"
	"foodshare/internal/core/domain/model/kernel"
	"foodshare/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP endpoints of the donation lifecycle.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDonationHandler      commands.CreateDonationCommandHandler
	createDonationBatchHandler commands.CreateDonationBatchCommandHandler
	reserveDonationHandler     commands.ReserveDonationCommandHandler
	businessDecisionHandler    commands.BusinessDecisionCommandHandler
	confirmPickupHandler       commands.ConfirmPickupCommandHandler

	// Query handlers
	listDonationsHandler  queries.ListDonationsQueryHandler
	getMyDonationsHandler queries.GetMyDonationsQueryHandler
	getStatsHandler       queries.GetDonationStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDonationHandler commands.CreateDonationCommandHandler,
	createDonationBatchHandler commands.CreateDonationBatchCommandHandler,
	reserveDonationHandler commands.ReserveDonationCommandHandler,
	businessDecisionHandler commands.BusinessDecisionCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	listDonationsHandler queries.ListDonationsQueryHandler,
	getMyDonationsHandler queries.GetMyDonationsQueryHandler,
	getStatsHandler queries.GetDonationStatsQueryHandler,
) *Server {
	return &Server{
		createDonationHandler:      createDonationHandler,
		createDonationBatchHandler: createDonationBatchHandler,
		reserveDonationHandler:     reserveDonationHandler,
		businessDecisionHandler:    businessDecisionHandler,
		confirmPickupHandler:       confirmPickupHandler,
		listDonationsHandler:       listDonationsHandler,
		getMyDonationsHandler:      getMyDonationsHandler,
		getStatsHandler:            getStatsHandler,
	}
}

// RegisterRoutes mounts the API under /api behind the auth middleware.
// The health endpoint stays unauthenticated for probes.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.GET("/health", s.Health)

	api := e.Group("/api", auth.Authenticate)
	api.POST("/donations", s.CreateDonation)
	api.POST("/donations/batch", s.CreateDonationBatch)
	api.GET("/donations", s.ListDonations)
	api.GET("/donations/my", s.GetMyDonations)
	api.POST("/donations/:id/reserve", s.ReserveDonation)
	api.POST("/donations/:id/business-confirm", s.BusinessDecision)
	api.POST("/donations/:id/confirm", s.ConfirmPickup)
	api.GET("/stats", s.GetStats)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// CreateDonation handles POST /api/donations - publishes a new donation.
func (s *Server) CreateDonation(c echo.Context) error {
	requester, ok := requestActor(c)
	if !ok {
		return writeUnauthenticated(c)
	}

	var payload DonationPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	donationID := kernel.NewUUID()
	cmd, err := commands.NewCreateDonationCommand(
		donationID, requester.ID(), detailsFromPayload(payload), payload.Latitude, payload.Longitude)
	if err != nil {
		return writeRequestError(c, err)
	}

	if err = s.createDonationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateDonationResponse{
		ID:        donationID.String(),
		Latitude:  cmd.Location().Latitude(),
		Longitude: cmd.Location().Longitude(),
	})
}

// CreateDonationBatch handles POST /api/donations/batch - publishes up to
// the batch limit of donations in a single transaction. Either every item in
// the batch is stored or none are.
func (s *Server) CreateDonationBatch(c echo.Context) error {
	requester, ok := requestActor(c)
	if !ok {
		return writeUnauthenticated(c)
	}

	var request CreateDonationBatchRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.CreateDonationCommand, 0, len(request.Donations))
	ids := make([]string, 0, len(request.Donations))
	for _, payload := range request.Donations {
		donationID := kernel.NewUUID()
		item, err := commands.NewCreateDonationCommand(
			donationID, requester.ID(), detailsFromPayload(payload), payload.Latitude, payload.Longitude)
		if err != nil {
			return writeRequestError(c, err)
		}
		items = append(items, item)
		ids = append(ids, donationID.String())
	}

	cmd, err := commands.NewCreateDonationBatchCommand(requester.ID(), items)
	if err != nil {
		return writeRequestError(c, err)
	}

	if err = s.createDonationBatchHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateDonationBatchResponse{IDs: ids})
}

// ListDonations handles GET /api/donations - the public listing with
// optional status, category and reservedBy filters.
func (s *Server) ListDonations(c echo.Context) error {
	query, err := queries.NewListDonationsQuery(
		c.QueryParam("status"),
		c.QueryParam("category"),
		c.QueryParam("reservedBy"),
	)
	if err != nil {
		return writeRequestError(c, err)
	}

	donations, err := s.listDonationsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]DonationResponse, len(donations))
	for i, summary := range donations {
		response[i] = toDonationResponse(summary)
	}
	return c.JSON(http.StatusOK, response)
}

// GetMyDonations handles GET /api/donations/my - the requester's history of
// given and received donations.
func (s *Server) GetMyDonations(c echo.Context) error {
	requester, ok := requestActor(c)
	if !ok {
		return writeUnauthenticated(c)
	}

	query, err := queries.NewGetMyDonationsQuery(requester)
	if err != nil {
		return writeRequestError(c, err)
	}

	history, err := s.getMyDonationsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]MyDonationResponse, len(history))
	for i, entry := range history {
		response[i] = MyDonationResponse{
			DonationResponse: toDonationResponse(entry.DonationSummary),
			Role:             string(entry.Role),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// ReserveDonation handles POST /api/donations/:id/reserve - an organization
// claims an available donation.
func (s *Server) ReserveDonation(c echo.Context) error {
	requester, ok := requestActor(c)
	if !ok {
		return writeUnauthenticated(c)
	}

	donationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeRequestError(c, err)
	}

	var request ReserveDonationRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewReserveDonationCommand(
		donationID, requester, request.PickupTime, request.PickupPersonName, request.PickupPersonID)
	if err != nil {
		return writeRequestError(c, err)
	}

	result, err := s.reserveDonationHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ReserveDonationResponse{
		VerificationCode: result.VerificationCode,
		ReservedAt:       result.ReservedAt,
		PickupTime:       result.PickupTime,
		PickupPersonName: result.PickupPersonName,
	})
}

// BusinessDecision handles POST /api/donations/:id/business-confirm - the
// donor accepts or rejects a pending pickup.
func (s *Server) BusinessDecision(c echo.Context) error {
	requester, ok := requestActor(c)
	if !ok {
		return writeUnauthenticated(c)
	}

	donationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeRequestError(c, err)
	}

	var request BusinessDecisionRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if request.Accept == nil {
		return writeRequestError(c, errs.NewValueIsRequiredError("accept"))
	}

	cmd, err := commands.NewBusinessDecisionCommand(donationID, requester, *request.Accept)
	if err != nil {
		return writeRequestError(c, err)
	}

	if err = s.businessDecisionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/donations/:id/confirm - one party confirms
// the handoff with the verification code.
func (s *Server) ConfirmPickup(c echo.Context) error {
	requester, ok := requestActor(c)
	if !ok {
		return writeUnauthenticated(c)
	}

	donationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeRequestError(c, err)
	}

	var request ConfirmPickupRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewConfirmPickupCommand(donationID, requester, request.VerificationCode)
	if err != nil {
		return writeRequestError(c, err)
	}

	result, err := s.confirmPickupHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	message := result.Party.String() + " confirmation registered"
	if result.Completed {
		message = "donation completed"
	}
	return c.JSON(http.StatusOK, ConfirmPickupResponse{
		Completed: result.Completed,
		Message:   message,
	})
}

// GetStats handles GET /api/stats - the requester's dashboard totals.
func (s *Server) GetStats(c echo.Context) error {
	requester, ok := requestActor(c)
	if !ok {
		return writeUnauthenticated(c)
	}

	query, err := queries.NewGetDonationStatsQuery(requester)
	if err != nil {
		return writeRequestError(c, err)
	}

	stats, err := s.getStatsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatsResponse{
		Total:       stats.Total,
		Active:      stats.Active,
		Completed:   stats.Completed,
		ImpactScore: stats.ImpactScore,
	})
}

func detailsFromPayload(payload DonationPayload) donation.Details {
	return donation.Details{
		Title:          payload.Title,
		Description:    payload.Description,
		Category:       payload.Category,
		Quantity:       payload.Quantity,
		Weight:         payload.Weight,
		DonationReason: payload.DonationReason,
		ContactInfo:    payload.ContactInfo,
		ExpiryDate:     payload.ExpiryDate,
		PickupAddress:  payload.PickupAddress,
	}
}
