package commands

import (
	"context"
	"errors"
	"time"

	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/pkg/errs"
)

// CreateSenderProfileCommandHandler creates at most one Sender per user.
// The existence pre-check covers the common case; a racing duplicate is rejected by the
// unique user_id index and reported by the repository as the same AlreadyExists error.
type CreateSenderProfileCommandHandler struct {
	uowFactory SenderUoWFactory
}

func NewCreateSenderProfileCommandHandler(uowFactory SenderUoWFactory) CreateSenderProfileCommandHandler {
	return CreateSenderProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateSenderProfileCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSenderProfileCommand,
) (*sender.Sender, error) {
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

	repo := uow.SenderRepository()

	existing, err := repo.GetByUserID(ctx, cmd.UserID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewAlreadyExistsError("sender", cmd.UserID(), sender.ReasonProfileAlreadyExists)
	}

	s, err := sender.NewSender(cmd.SenderID(), cmd.UserID(), cmd.Name(), cmd.Contact(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
