package queries_test

import (
	"context"
	"testing"
	"time"

	"campusmarket/internal/adapters/out/postgres/listingrepo"
	"campusmarket/internal/adapters/out/postgres/orderrepo"
	"campusmarket/internal/adapters/out/postgres/studentrepo"
	"campusmarket/internal/core/application/usecases/queries"
	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/listing"
	"campusmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// queryTestDB bundles the container-backed database shared by the history
// query suites, with seeding helpers operating on the raw DTOs.
type queryTestDB struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
}

func (base *queryTestDB) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	base.Require().NoError(err)
	base.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	base.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	base.Require().NoError(err)
	base.db = db

	base.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&listingrepo.ListingDTO{},
		&studentrepo.StudentDTO{},
	))
}

func (base *queryTestDB) SetupTest() {
	base.Require().NoError(base.db.Exec("TRUNCATE TABLE orders, listings, students").Error)
}

func (base *queryTestDB) TearDownSuite() {
	if base.container != nil {
		base.Require().NoError(base.container.Terminate(context.Background()))
	}
}

type seededStudent struct {
	id     kernel.UUID
	userID kernel.UUID
	email  string
}

func (base *queryTestDB) seedStudent(email string) seededStudent {
	s := seededStudent{
		id:     kernel.NewUUID(),
		userID: kernel.NewUUID(),
		email:  email,
	}
	dto := studentrepo.StudentDTO{
		ID:       s.id.Bytes(),
		UserID:   s.userID.Bytes(),
		Email:    email,
		IsActive: true,
	}
	base.Require().NoError(base.db.Create(&dto).Error)
	return s
}

func (base *queryTestDB) seedListing(
	ownerID kernel.UUID,
	price int64,
	listingType listing.ListingType,
	isAvailable bool,
) kernel.UUID {
	id := kernel.NewUUID()
	dto := listingrepo.ListingDTO{
		ID:          id.Bytes(),
		OwnerID:     ownerID.Bytes(),
		Price:       price,
		ListingType: int(listingType),
		IsAvailable: isAvailable,
	}
	base.Require().NoError(base.db.Create(&dto).Error)
	return id
}

func (base *queryTestDB) seedOrder(
	buyerID, sellerID, listingID kernel.UUID,
	status order.Status,
	price int64,
	createdAt time.Time,
) kernel.UUID {
	id := kernel.NewUUID()
	dto := orderrepo.OrderDTO{
		ID:         id.Bytes(),
		ListingID:  listingID.Bytes(),
		BuyerID:    buyerID.Bytes(),
		SellerID:   sellerID.Bytes(),
		OrderType:  int(order.TypeSell),
		Status:     int(status),
		TotalPrice: price,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	base.Require().NoError(base.db.Create(&dto).Error)
	return id
}

type GetBuyerOrdersQueryHandlerTestSuite struct {
	queryTestDB
	handler queries.GetBuyerOrdersQueryHandler
}

func (suite *GetBuyerOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.queryTestDB.SetupSuite()
	suite.handler = queries.NewGetBuyerOrdersQueryHandler(suite.db)
}

func (suite *GetBuyerOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	buyer := suite.seedStudent("buyer@campus.edu")
	query, err := queries.NewGetBuyerOrdersQuery(buyer.userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetBuyerOrdersQueryHandlerTestSuite) TestHandle_UnknownUser_ReturnsNotAParticipant() {
	query, err := queries.NewGetBuyerOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, queries.ErrNotAParticipant)
}

func (suite *GetBuyerOrdersQueryHandlerTestSuite) TestHandle_ReturnsOwnOrdersNewestFirst() {
	buyer := suite.seedStudent("buyer@campus.edu")
	seller := suite.seedStudent("seller@campus.edu")
	listingID := suite.seedListing(seller.id, 12000, listing.TypeSell, true)

	now := time.Now().UTC().Truncate(time.Microsecond)
	older := suite.seedOrder(buyer.id, seller.id, listingID, order.Completed, 12000, now.Add(-2*time.Hour))
	newer := suite.seedOrder(buyer.id, seller.id, listingID, order.Pending, 12000, now)

	// Another buyer's order on the same listing must not leak in
	stranger := suite.seedStudent("stranger@campus.edu")
	suite.seedOrder(stranger.id, seller.id, listingID, order.Pending, 12000, now)

	query, err := queries.NewGetBuyerOrdersQuery(buyer.userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer, result[0].ID)
	suite.Equal(older, result[1].ID)
	suite.Equal(order.Pending, result[0].Status)
	suite.Equal(order.Completed, result[1].Status)
}

func (suite *GetBuyerOrdersQueryHandlerTestSuite) TestHandle_CounterpartIsSeller() {
	buyer := suite.seedStudent("buyer@campus.edu")
	seller := suite.seedStudent("seller@campus.edu")
	listingID := suite.seedListing(seller.id, 8000, listing.TypeBoth, false)
	suite.seedOrder(buyer.id, seller.id, listingID, order.Negotiating, 8000, time.Now().UTC())

	query, err := queries.NewGetBuyerOrdersQuery(buyer.userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(seller.id, result[0].Counterpart.ID)
	suite.Equal(seller.email, result[0].Counterpart.Email)
	suite.Equal(listingID, result[0].Listing.ID)
	suite.Equal(int64(8000), result[0].Listing.Price.Amount())
	suite.Equal(listing.TypeBoth, result[0].Listing.Type)
	suite.False(result[0].Listing.IsAvailable)
	suite.Equal(int64(8000), result[0].TotalPrice.Amount())
}

func (suite *GetBuyerOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetBuyerOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().ErrorIs(err, queries.ErrGetBuyerOrdersQueryIsNotConstructed)
}

func TestGetBuyerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetBuyerOrdersQueryHandlerTestSuite))
}
