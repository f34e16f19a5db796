package accountrepo_test

import (
	"context"
	"testing"

	"dronedelivery/internal/adapters/out/postgres/accountrepo"
	"dronedelivery/internal/adapters/out/postgres/addressrepo"
	"dronedelivery/internal/adapters/out/postgres/testdb"
	"dronedelivery/internal/core/domain/model/account"
	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AccountRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	addresses  *addressrepo.GormAddressRepository
	repository *accountrepo.GormAccountRepository
}

func (s *AccountRepositoryTestSuite) SetupSuite() {
	s.db = testdb.OpenSQLite(s.T())
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	testdb.Truncate(s.T(), s.db)
	s.addresses = addressrepo.NewGormAddressRepository(s.db)
	s.repository = accountrepo.NewGormAccountRepository(s.db)
}

func (s *AccountRepositoryTestSuite) newAccount(email string) *account.Account {
	home, err := address.NewAddress("100 Main St", "Springfield", "IL", "62701")
	s.Require().NoError(err)

	homeID, err := s.addresses.Insert(context.Background(), home)
	s.Require().NoError(err)

	acc, err := account.NewAccount("Ada", "Lovelace", email, home.WithID(homeID))
	s.Require().NoError(err)
	return acc
}

func (s *AccountRepositoryTestSuite) TestAddThenGet() {
	ctx := context.Background()
	acc := s.newAccount("ada@example.com")

	s.Require().NoError(s.repository.Add(ctx, acc))
	s.True(acc.IsPersisted())

	loaded, err := s.repository.Get(ctx, acc.ID())
	s.Require().NoError(err)
	s.Equal(acc.ID(), loaded.ID())
	s.Equal("ada@example.com", loaded.Email())
	s.Equal(acc.HomeAddress().ID(), loaded.HomeAddress().ID())
	s.Equal("100 Main St", loaded.HomeAddress().Street())
}

func (s *AccountRepositoryTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	s.Require().NoError(s.repository.Add(ctx, s.newAccount("ada@example.com")))

	err := s.repository.Add(ctx, s.newAccount("ada@example.com"))

	s.Require().ErrorIs(err, errs.ErrConflict)
}

func (s *AccountRepositoryTestSuite) TestAdd_RequiresStoredHomeAddress() {
	home, err := address.NewAddress("100 Main St", "Springfield", "IL", "62701")
	s.Require().NoError(err)
	acc, err := account.NewAccount("Ada", "Lovelace", "ada@example.com", home)
	s.Require().NoError(err)

	err = s.repository.Add(context.Background(), acc)

	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	s.False(acc.IsPersisted())
}

func (s *AccountRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repository.Get(context.Background(), 777)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}
