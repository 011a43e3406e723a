package commands

import (
	"errors"
	"fmt"
	"time"

	"shipmate/internal/pkg/errs"
	"shipmate/internal/pkg/guard"
)

// DefaultExpiryBatchSize bounds how many orders one expiry run closes.
const DefaultExpiryBatchSize = 500

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand closes pending orders nobody accepted within ttl of now.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	now       time.Time
	ttl       time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

func NewExpireStaleOrdersCommand(now time.Time, ttl time.Duration, batchSize int) (ExpireStaleOrdersCommand, error) {
	var err error
	if now.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("now"))
	}
	if ttl <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl)))
	}
	if batchSize <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("batch_size", fmt.Errorf("%d is not positive", batchSize)))
	}
	if err != nil {
		return ExpireStaleOrdersCommand{}, err
	}

	return ExpireStaleOrdersCommand{
		now:       now,
		ttl:       ttl,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// Cutoff is the creation time before which pending orders are stale.
func (c ExpireStaleOrdersCommand) Cutoff() time.Time {
	return c.now.Add(-c.ttl)
}

func (c ExpireStaleOrdersCommand) Now() time.Time {
	return c.now
}

func (c ExpireStaleOrdersCommand) BatchSize() int {
	return c.batchSize
}
