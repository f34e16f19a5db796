package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "dronedelivery/internal/adapters/out/postgres"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"
	"dronedelivery/internal/core/domain/model/account"
	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var shipDate = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite runs the order store against a real PostgreSQL
// schema created by the embedded migrations.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	suite.dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	suite.Require().NoError(postgresadapter.MigrateUp(suite.dsn))

	db, err := gorm.Open(postgresdriver.Open(suite.dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, accounts, addresses RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// registerAccount stores a home address and an account in one unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) registerAccount(email string) *account.Account {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	home, err := address.NewAddress("100 Main St", "Springfield", "IL", "62701")
	suite.Require().NoError(err)
	homeID, err := uow.AddressRepository().Insert(ctx, home)
	suite.Require().NoError(err)

	acc, err := account.NewAccount("Ada", "Lovelace", email, home.WithID(homeID))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AccountRepository().Add(ctx, acc))
	suite.Require().NoError(uow.Commit(ctx))
	return acc
}

func (suite *UnitOfWorkIntegrationTestSuite) newDraft(acc *account.Account) *order.Order {
	destination, err := address.NewAddress("200 Oak Ave", "Springfield", "IL", "62704")
	suite.Require().NoError(err)
	draft, err := order.NewOrder(acc.ID(), acc.HomeAddress(), destination, shipDate, shipDate.Add(48*time.Hour))
	suite.Require().NoError(err)
	return draft
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.db.Table(table).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrateUp_IsIdempotent() {
	suite.Require().NoError(postgresadapter.MigrateUp(suite.dsn))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsOrder() {
	ctx := context.Background()
	acc := suite.registerAccount("ada@example.com")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	id, err := uow.OrderRepository().Insert(ctx, suite.newDraft(acc))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().FindByOrderID(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(acc.ID(), loaded.AccountID())
	suite.True(loaded.DeliveryDate().Equal(shipDate.Add(48 * time.Hour)))
	suite.Len(loaded.PackageCode().String(), kernel.PackageCodeLength)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsOrderAndAddress() {
	ctx := context.Background()
	acc := suite.registerAccount("ada@example.com")
	addressesBefore := suite.count("addresses")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	_, err := uow.OrderRepository().Insert(ctx, suite.newDraft(acc))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.count("orders"))
	suite.Equal(addressesBefore, suite.count("addresses"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPackageCodeCollision_RetriedInsideTransaction() {
	ctx := context.Background()
	acc := suite.registerAccount("ada@example.com")
	taken := "0123456789abcdef"
	fresh := "fedcba9876543210"
	codes := []string{taken, taken, fresh}
	next := 0
	generator := func() kernel.PackageCode {
		code, _ := kernel.PackageCodeFromString(codes[next%len(codes)])
		next++
		return code
	}

	factory := postgresadapter.NewGormUnitOfWorkFactory(suite.db, orderrepo.WithPackageCodeGenerator(generator))

	first := factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	_, err := first.OrderRepository().Insert(ctx, suite.newDraft(acc))
	suite.Require().NoError(err)
	suite.Require().NoError(first.Commit(ctx))

	second := factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	draft := suite.newDraft(acc)
	_, err = second.OrderRepository().Insert(ctx, draft)
	suite.Require().NoError(err, "a collision must not abort the surrounding transaction")
	suite.Require().NoError(second.Commit(ctx))

	suite.Equal(fresh, draft.PackageCode().String())
	suite.Equal(int64(2), suite.count("orders"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPackageCodeCollision_DetectedWithoutErrorTranslation() {
	ctx := context.Background()
	acc := suite.registerAccount("ada@example.com")

	raw, err := gorm.Open(postgresdriver.Open(suite.dsn), &gorm.Config{})
	suite.Require().NoError(err)

	stuck := func() kernel.PackageCode {
		code, _ := kernel.PackageCodeFromString("aaaaaaaaaaaaaaaa")
		return code
	}
	repo := orderrepo.NewGormOrderRepository(raw,
		orderrepo.WithPackageCodeGenerator(stuck), orderrepo.WithMaxAttempts(2))

	_, err = repo.Insert(ctx, suite.newDraft(acc))
	suite.Require().NoError(err)

	_, err = repo.Insert(ctx, suite.newDraft(acc))
	suite.Require().ErrorIs(err, errs.ErrStorageFailure)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Equal(int64(1), suite.count("orders"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSchema_RejectsDeliveryBeforeShip() {
	acc := suite.registerAccount("ada@example.com")

	err := suite.db.Exec(`
		INSERT INTO orders (package_code, ship_date, delivery_date, account_id,
		                    origin_address_id, destination_address_id, status)
		VALUES ('bbbbbbbbbbbbbbbb', ?, ?, ?, ?, ?, 'Created')`,
		shipDate, shipDate.Add(-time.Hour), acc.ID(), acc.HomeAddress().ID(), acc.HomeAddress().ID(),
	).Error

	suite.Require().ErrorIs(err, gorm.ErrCheckConstraintViolated)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAccountRepository_DuplicateEmailIsConflict() {
	suite.registerAccount("ada@example.com")

	ctx := context.Background()
	repo := suite.factory.Create().AccountRepository()
	homeID, err := suite.factory.Create().AddressRepository().Insert(ctx, suite.mustAddress())
	suite.Require().NoError(err)
	acc, err := account.NewAccount("Ada", "Byron", "ada@example.com", suite.mustAddress().WithID(homeID))
	suite.Require().NoError(err)

	suite.Require().ErrorIs(repo.Add(ctx, acc), errs.ErrConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) mustAddress() address.Address {
	a, err := address.NewAddress("1 Depot Rd", "Springfield", "IL", "62702")
	suite.Require().NoError(err)
	return a
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
