package commands

import (
	"context"
	"time"

	"shipmate/internal/core/domain/model/complaint"
	"shipmate/internal/pkg/errs"
)

// FileComplaintCommandHandler stores a complaint about an order of the caller's Sender.
// Orders of other senders are reported as not found.
type FileComplaintCommandHandler struct {
	uowFactory UoWFactory
}

func NewFileComplaintCommandHandler(uowFactory UoWFactory) FileComplaintCommandHandler {
	return FileComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h FileComplaintCommandHandler) Handle(ctx context.Context, cmd FileComplaintCommand) (*complaint.Complaint, error) {
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

	s, err := resolveSender(ctx, uow.SenderRepository(), cmd.UserID())
	if err != nil {
		return nil, err
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.SenderID().IsEqual(s.ID()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	c, err := complaint.NewComplaint(cmd.ComplaintID(), o.ID(), s.ID(), cmd.Issue(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ComplaintRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
