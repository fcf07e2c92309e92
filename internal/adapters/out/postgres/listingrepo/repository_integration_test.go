package listingrepo_test

import (
	"context"
	"testing"
	"time"

	"campusmarket/internal/adapters/out/postgres/listingrepo"
	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/listing"
	"campusmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type ListingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *listingrepo.GormListingRepository
	tracker    *MockAggregateTracker
}

func (suite *ListingRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&listingrepo.ListingDTO{}))
}

func (suite *ListingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE listings").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = listingrepo.NewGormListingRepository(suite.db, suite.tracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
}

func (suite *ListingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListingRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	lst := suite.seedListing(listing.TypeSell, true)

	loaded, err := suite.repository.Get(context.Background(), lst.ID())

	suite.Require().NoError(err)
	suite.Equal(lst.ID(), loaded.ID())
	suite.Equal(lst.OwnerID(), loaded.OwnerID())
	suite.Equal(listing.TypeSell, loaded.Type())
	suite.True(loaded.IsAvailable())
	suite.True(loaded.Price().IsEqual(lst.Price()))
}

func (suite *ListingRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ListingRepositoryIntegrationTestSuite) TestUpdate_PersistsAvailabilityFlip() {
	ctx := context.Background()
	lst := suite.seedListing(listing.TypeBoth, true)

	loaded, err := suite.repository.Get(ctx, lst.ID())
	suite.Require().NoError(err)

	loaded.MarkUnavailable()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, lst.ID())
	suite.Require().NoError(err)
	suite.False(reloaded.IsAvailable())
}

func (suite *ListingRepositoryIntegrationTestSuite) TestUpdate_MissingListing_NotFound() {
	price, err := kernel.NewPrice(5000)
	suite.Require().NoError(err)
	lst, err := listing.RestoreListing(kernel.NewUUID(), kernel.NewUUID(), price, listing.TypeSell, false)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), lst)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ListingRepositoryIntegrationTestSuite) seedListing(
	listingType listing.ListingType,
	isAvailable bool,
) *listing.Listing {
	price, err := kernel.NewPrice(5000)
	suite.Require().NoError(err)
	lst, err := listing.RestoreListing(kernel.NewUUID(), kernel.NewUUID(), price, listingType, isAvailable)
	suite.Require().NoError(err)

	dto := listingrepo.ListingDTO{
		ID:          lst.ID().Bytes(),
		OwnerID:     lst.OwnerID().Bytes(),
		Price:       lst.Price().Amount(),
		ListingType: int(lst.Type()),
		IsAvailable: lst.IsAvailable(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return lst
}

func TestListingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ListingRepositoryIntegrationTestSuite))
}
