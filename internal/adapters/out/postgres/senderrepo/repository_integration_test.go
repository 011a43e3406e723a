package senderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shipmate/internal/adapters/out/postgres/pgtest"
	"shipmate/internal/adapters/out/postgres/senderrepo"
	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/sender"
	"shipmate/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type SenderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *senderrepo.GormSenderRepository
	tracker    *MockAggregateTracker
}

func (suite *SenderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *SenderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SenderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error
	suite.Require().NoError(err)

	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = senderrepo.NewGormSenderRepository(suite.db, suite.tracker)
}

func (suite *SenderRepositoryIntegrationTestSuite) TestAdd_ThenGetByUserID() {
	ctx := context.Background()
	s := suite.newSender("user-1")

	suite.Require().NoError(suite.repository.Add(ctx, s))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", s.ID(), s)

	got, err := suite.repository.GetByUserID(ctx, "user-1")
	suite.Require().NoError(err)
	suite.True(s.IsEqual(got))
	suite.Equal("Asha", got.Name())
	suite.Equal("+91 98200 00000", got.Contact().Phone())
	suite.Equal("asha@example.com", got.Contact().Email())
	suite.WithinDuration(s.CreatedAt(), got.CreatedAt(), time.Millisecond)
}

func (suite *SenderRepositoryIntegrationTestSuite) TestGetByUserID_Unknown_ReturnsNotFound() {
	got, err := suite.repository.GetByUserID(context.Background(), "nobody")

	suite.Nil(got)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *SenderRepositoryIntegrationTestSuite) TestAdd_SecondProfileForUser_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newSender("user-1")))

	err := suite.repository.Add(ctx, suite.newSender("user-1"))

	var exists *errs.AlreadyExistsError
	suite.Require().ErrorAs(err, &exists)
	suite.Equal(sender.ReasonProfileAlreadyExists, exists.Reason)
}

func (suite *SenderRepositoryIntegrationTestSuite) TestAdd_ConcurrentCreation_KeepsOneProfile() {
	ctx := context.Background()
	const attempts = 5

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repository.Add(ctx, suite.newSender("user-racing"))
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errs.ErrAlreadyExists)
	}
	suite.Equal(1, succeeded)

	var count int64
	suite.Require().NoError(suite.db.Model(&senderrepo.SenderDTO{}).Where("user_id = ?", "user-racing").Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *SenderRepositoryIntegrationTestSuite) newSender(userID string) *sender.Sender {
	contact, err := kernel.NewContact("+91 98200 00000", "asha@example.com")
	suite.Require().NoError(err)

	s, err := sender.NewSender(kernel.NewUUID(), userID, "Asha", contact, time.Now())
	suite.Require().NoError(err)
	return s
}

func TestSenderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SenderRepositoryIntegrationTestSuite))
}
