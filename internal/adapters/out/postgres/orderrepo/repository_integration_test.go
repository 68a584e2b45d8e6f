package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"burgershop/internal/adapters/out/postgres/orderrepo"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.LineItemIngredientDTO{},
		&orderrepo.StatusChangeDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test, children first
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE line_item_ingredients, status_changes, line_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsAggregateWithChildren() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertRowCount("orders", 1)
	suite.assertRowCount("line_items", 2)
	suite.assertRowCount("line_item_ingredients", 1)
	suite.assertRowCount("status_changes", 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrip() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder(time.Now())
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.True(originalOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Equal(order.PaymentCard, retrievedOrder.PaymentMethod())
	suite.True(originalOrder.Total().IsEqual(retrievedOrder.Total()))
	suite.Len(retrievedOrder.LineItems(), 2)
	suite.Len(retrievedOrder.History(), 1)

	// The customized line item keeps its extras
	var customized *order.LineItem
	for _, li := range retrievedOrder.LineItems() {
		if len(li.Customizations()) > 0 {
			customized = li
		}
	}
	suite.Require().NotNil(customized)
	suite.Len(customized.Customizations(), 1)
	suite.Equal(2, customized.Customizations()[0].Quantity())
	suite.True(customized.Customizations()[0].IsExtra())
	suite.Equal("extra crispy", customized.Notes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesChildRows() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Mutate the aggregate: drop the customized item and move it forward
	var customizedID kernel.UUID
	for _, li := range testOrder.LineItems() {
		if len(li.Customizations()) > 0 {
			customizedID = li.ID()
		}
	}
	suite.Require().NoError(testOrder.RemoveLineItem(customizedID))
	suite.Require().NoError(testOrder.ChangeStatus(order.Preparing, order.NewForwardGraphPolicy(), time.Now()))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Preparing, retrievedOrder.Status())
	suite.Len(retrievedOrder.LineItems(), 1)
	suite.Len(retrievedOrder.History(), 2)
	suite.True(testOrder.Total().IsEqual(retrievedOrder.Total()))

	// No orphaned customization rows survive the replacement
	suite.assertRowCount("line_item_ingredients", 0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now())

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_CascadesToChildren() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Remove(ctx, testOrder.ID()))

	suite.assertRowCount("orders", 0)
	suite.assertRowCount("line_items", 0)
	suite.assertRowCount("line_item_ingredients", 0)
	suite.assertRowCount("status_changes", 0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Remove(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingBefore_FiltersByStatusAndAge() {
	ctx := context.Background()

	stalePending := suite.createTestOrder(time.Now().Add(-2 * time.Hour))
	freshPending := suite.createTestOrder(time.Now())
	stalePreparing := suite.createTestOrder(time.Now().Add(-2 * time.Hour))
	suite.Require().NoError(stalePreparing.ChangeStatus(order.Preparing, order.NewForwardGraphPolicy(), time.Now()))

	for _, o := range []*order.Order{stalePending, freshPending, stalePreparing} {
		suite.tracker.On("TrackAggregate", o.ID(), o).Once()
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	stale, err := suite.repository.GetAllPendingBefore(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)

	suite.Require().Len(stale, 1)
	suite.True(stalePending.ID().IsEqual(stale[0].ID()))
	suite.Len(stale[0].LineItems(), 2)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder builds a card-paid order with a plain line item and a
// customized one.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(createdAt time.Time) *order.Order {
	plainSubtotal, err := kernel.MoneyFromString("8.00")
	suite.Require().NoError(err)
	plain, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), plainSubtotal, "", nil)
	suite.Require().NoError(err)

	extra, err := order.NewCustomization(kernel.NewUUID(), 2, true)
	suite.Require().NoError(err)
	customizedSubtotal, err := kernel.MoneyFromString("11.00")
	suite.Require().NoError(err)
	customized, err := order.NewLineItem(
		kernel.NewUUID(), kernel.NewUUID(), customizedSubtotal, "extra crispy", []order.Customization{extra},
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), order.PaymentCard, nil, []*order.LineItem{plain, customized}, createdAt,
	)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
