package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"burgershop/internal/adapters/out/postgres/catalogrepo"
	"burgershop/internal/core/domain/model/kernel"
	"burgershop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogRepositoryIntegrationTestSuite provides integration tests for the
// read-only catalog repository.
type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
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
		&catalogrepo.ProductDTO{},
		&catalogrepo.IngredientDTO{},
	))

	suite.repository = catalogrepo.NewGormCatalogRepository(db)
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products, ingredients").Error)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetProduct_ExistingProduct() {
	productID := suite.seedProduct("Classic Burger", "burger", "8.00", true)

	prod, err := suite.repository.GetProduct(context.Background(), productID)
	suite.Require().NoError(err)

	suite.True(productID.IsEqual(prod.ID()))
	suite.Equal("Classic Burger", prod.Name())
	suite.Equal("burger", prod.Category())
	suite.Equal("8.00", prod.BasePrice().String())
	suite.True(prod.IsAvailable())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetProduct_NonExistent_ReturnsNotFoundError() {
	_, err := suite.repository.GetProduct(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetIngredient_ExistingIngredient() {
	ingredientID := kernel.NewUUID()
	err := suite.db.Create(&catalogrepo.IngredientDTO{
		ID:    ingredientID.Bytes(),
		Name:  "Bacon",
		Unit:  "slice",
		Price: decimal.RequireFromString("1.50"),
		Stock: 40,
	}).Error
	suite.Require().NoError(err)

	ingredient, err := suite.repository.GetIngredient(context.Background(), ingredientID)
	suite.Require().NoError(err)

	suite.Equal("Bacon", ingredient.Name())
	suite.Equal("slice", ingredient.Unit())
	suite.Equal("1.50", ingredient.Price().String())
	suite.Equal(40, ingredient.Stock())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetIngredient_NonExistent_ReturnsNotFoundError() {
	_, err := suite.repository.GetIngredient(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestGetAllAvailableProducts_SortedMenu() {
	suite.seedProduct("Milkshake", "drink", "4.00", true)
	suite.seedProduct("Veggie Burger", "burger", "7.00", true)
	suite.seedProduct("Classic Burger", "burger", "8.00", true)
	suite.seedProduct("Seasonal Burger", "burger", "9.00", false)

	menu, err := suite.repository.GetAllAvailableProducts(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(menu, 3)
	suite.Equal("Classic Burger", menu[0].Name())
	suite.Equal("Veggie Burger", menu[1].Name())
	suite.Equal("Milkshake", menu[2].Name())
}

func (suite *CatalogRepositoryIntegrationTestSuite) seedProduct(
	name, category, basePrice string,
	available bool,
) kernel.UUID {
	productID := kernel.NewUUID()
	err := suite.db.Create(&catalogrepo.ProductDTO{
		ID:        productID.Bytes(),
		Name:      name,
		Category:  category,
		BasePrice: decimal.RequireFromString(basePrice),
		Available: available,
	}).Error
	suite.Require().NoError(err)

	return productID
}

func TestCatalogRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
