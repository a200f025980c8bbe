package productrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetActiveByIDsForUpdate_SkipsMissingAndInactive() {
	ctx := context.Background()
	active := suite.insertProduct("Mouse", "29.99", 5, true)
	inactive := suite.insertProduct("Old Mouse", "9.99", 5, false)
	missing := kernel.NewUUID()

	products, err := suite.repository.GetActiveByIDsForUpdate(ctx, []kernel.UUID{active.ID(), inactive.ID(), missing})

	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.True(products[0].ID().IsEqual(active.ID()))
	suite.Equal("29.99", products[0].Price().String())
	suite.Equal(5, products[0].Stock())
	suite.True(products[0].IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetActiveByIDsForUpdate_EmptyIDs() {
	products, err := suite.repository.GetActiveByIDsForUpdate(context.Background(), nil)

	suite.Require().NoError(err)
	suite.NotNil(products)
	suite.Empty(products)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetActiveByIDsForUpdate_BlocksConcurrentLock() {
	ctx := context.Background()
	p := suite.insertProduct("Keyboard", "79.99", 5, true)

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	locker := productrepo.NewGormProductRepository(tx, suite.tracker)
	_, err := locker.GetActiveByIDsForUpdate(ctx, []kernel.UUID{p.ID()})
	suite.Require().NoError(err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		other := suite.db.Begin()
		defer other.Rollback()
		_, _ = productrepo.NewGormProductRepository(other, suite.tracker).
			GetActiveByIDsForUpdate(ctx, []kernel.UUID{p.ID()})
	}()

	select {
	case <-done:
		suite.Fail("second locking read should wait for the first transaction")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(tx.Rollback().Error)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		suite.Fail("second locking read did not resume after rollback")
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdateStock_PersistsStock() {
	ctx := context.Background()
	p := suite.insertProduct("Hub", "45.00", 10, true)
	suite.Require().NoError(p.DecreaseStock(4))
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(suite.repository.UpdateStock(ctx, []*product.Product{p}))

	var row productrepo.ProductDTO
	suite.Require().NoError(suite.db.First(&row, "id = ?", p.ID().Bytes()).Error)
	suite.Equal(6, row.Stock)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdateStock_UnknownProduct() {
	price, _ := kernel.MoneyFromString("1.00")
	ghost, _ := product.NewProduct(kernel.NewUUID(), "Ghost", "", price, 1, "None")

	err := suite.repository.UpdateStock(context.Background(), []*product.Product{ghost})

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) insertProduct(name, price string, stock int, active bool) *product.Product {
	m, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	p, err := product.RestoreProduct(kernel.NewUUID(), name, "", m, stock, "Electronics", active)
	suite.Require().NoError(err)
	row := productrepo.FromDomain(p)
	suite.Require().NoError(suite.db.Create(&row).Error)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
