package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aidancornelius/murmur-api/schema"
)

type AccountTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MurmurStore
}

func NewAccountTestSuite(connURI, dbName string) *AccountTestSuite {
	return &AccountTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *AccountTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = mongoClient.Connect(ctx); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
}

func (s *AccountTestSuite) SetupTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.testDatabase.Collection(schema.ProfileCollection).DeleteMany(ctx, bson.M{}); err != nil {
		s.T().Fatalf("clear profile collection with error: %s", err.Error())
	}
}

func (s *AccountTestSuite) TestCreateAccount() {
	profile, err := s.store.CreateAccount("account-test", map[string]interface{}{"platform": "ios"})
	s.NoError(err)
	s.NotEmpty(profile.ID)
	s.Equal("account-test", profile.AccountNumber)

	count, err := s.testDatabase.Collection(schema.ProfileCollection).CountDocuments(context.Background(), bson.M{
		"account_number": "account-test",
	})
	s.NoError(err)
	s.Equal(int64(1), count)

	// the same account number cannot register twice
	_, err = s.store.CreateAccount("account-test", nil)
	s.Equal(ErrAccountTaken, err)
}

func (s *AccountTestSuite) TestGetProfile() {
	_, err := s.store.CreateAccount("account-test", nil)
	s.NoError(err)

	profile, err := s.store.GetProfile("account-test")
	s.NoError(err)
	s.Equal("account-test", profile.AccountNumber)
	s.Nil(profile.Configuration)

	_, err = s.store.GetProfile("account-unknown")
	s.Equal(ErrAccountNotFound, err)
}

func (s *AccountTestSuite) TestUpdateLoadConfiguration() {
	_, err := s.store.CreateAccount("account-test", nil)
	s.NoError(err)

	cfg := schema.DefaultLoadConfiguration
	cfg.DecayRate = 0.5
	err = s.store.UpdateLoadConfiguration("account-test", cfg)
	s.NoError(err)

	profile, err := s.store.GetProfile("account-test")
	s.NoError(err)
	s.NotNil(profile.Configuration)
	s.Equal(0.5, profile.Configuration.DecayRate)

	err = s.store.UpdateLoadConfiguration("account-unknown", cfg)
	s.Equal(ErrAccountNotFound, err)
}

func (s *AccountTestSuite) TestListAccountNumbers() {
	for _, accountNumber := range []string{"account-a", "account-b"} {
		_, err := s.store.CreateAccount(accountNumber, nil)
		s.NoError(err)
	}

	accountNumbers, err := s.store.ListAccountNumbers()
	s.NoError(err)
	s.ElementsMatch([]string{"account-a", "account-b"}, accountNumbers)
}

func TestAccountTestSuite(t *testing.T) {
	connURI := os.Getenv("MONGO_CONN_URI")
	if connURI == "" {
		t.Skip("mongo connection is not configured")
	}
	suite.Run(t, NewAccountTestSuite(connURI, "test-murmur-account"))
}
