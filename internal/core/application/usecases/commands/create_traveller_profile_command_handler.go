package commands

import (
	"context"
	"errors"
	"time"

	"shipmate/internal/core/domain/model/traveller"
	"shipmate/internal/pkg/errs"
)

// CreateTravellerProfileCommandHandler creates at most one Traveller per user.
type CreateTravellerProfileCommandHandler struct {
	uowFactory TravellerUoWFactory
}

func NewCreateTravellerProfileCommandHandler(uowFactory TravellerUoWFactory) CreateTravellerProfileCommandHandler {
	return CreateTravellerProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateTravellerProfileCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTravellerProfileCommand,
) (*traveller.Traveller, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TravellerRepository()

	existing, err := repo.GetByUserID(ctx, cmd.UserID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewAlreadyExistsError("traveller", cmd.UserID(), traveller.ReasonProfileAlreadyExists)
	}

	tr, err := traveller.NewTraveller(
		cmd.TravellerID(),
		cmd.UserID(),
		cmd.Name(),
		cmd.Contact(),
		cmd.SourceCity(),
		cmd.DestCity(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, tr); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tr, nil
}
