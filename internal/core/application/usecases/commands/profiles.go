package commands

import (
	"context"
	"errors"
	"strings"

	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/core/domain/model/traveller"
	"shipmate/internal/core/ports"
	"shipmate/internal/pkg/errs"
)

// resolveSender turns a missing Sender into a precondition failure the client can act on.
func resolveSender(ctx context.Context, repo ports.SenderRepository, userID string) (*sender.Sender, error) {
	s, err := repo.GetByUserID(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewPreconditionFailedErrorWithCause(sender.ReasonProfileRequired, err)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// resolveTraveller turns a missing Traveller into a precondition failure the client can act on.
func resolveTraveller(ctx context.Context, repo ports.TravellerRepository, userID string) (*traveller.Traveller, error) {
	tr, err := repo.GetByUserID(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewPreconditionFailedErrorWithCause(traveller.ReasonProfileRequired, err)
	}
	if err != nil {
		return nil, err
	}
	return tr, nil
}

func normalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errs.NewValueIsRequiredError("user_id")
	}
	return userID, nil
}
