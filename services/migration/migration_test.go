package migration

import (
	"context"
	"fmt"
	"testing"

	"graphsense-dashboard/pkg/logger"
	"graphsense-dashboard/services/usertags"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbName = "test_migration"

type MigrationSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	client   *mongo.Client
}

func (suite *MigrationSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	suite.Require().NoError(err)
	suite.pool = pool

	resource, err := pool.Run("mongo", "latest", nil)
	suite.Require().NoError(err)
	suite.resource = resource

	var db *mongo.Client
	err = pool.Retry(func() error {
		uri := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}
		db = client
		return client.Ping(context.Background(), nil)
	})
	suite.Require().NoError(err)

	suite.client = db
}

func (suite *MigrationSuite) TearDownSuite() {
	suite.Require().NoError(suite.pool.Purge(suite.resource))
}

func (suite *MigrationSuite) TestMigration() {
	ctx := context.Background()

	suite.Require().NoError(RunMigrations(ctx, suite.client, dbName, logger.Nop()))
	// a second run finds the step recorded and does nothing
	suite.Require().NoError(RunMigrations(ctx, suite.client, dbName, logger.Nop()))

	n, err := suite.client.Database(dbName).Collection(CollectionName).CountDocuments(ctx, bson.M{})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(len(steps)), n)

	cursor, err := suite.client.Database(dbName).Collection(usertags.CollectionName).Indexes().List(ctx)
	suite.Require().NoError(err)
	var indexes []bson.M
	suite.Require().NoError(cursor.All(ctx, &indexes))

	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		names = append(names, fmt.Sprint(idx["name"]))
	}
	suite.Require().Contains(names, "currency_1_address_1")
}

func (suite *MigrationSuite) TestInvalidArguments() {
	ctx := context.Background()

	suite.Require().EqualError(RunMigrations(ctx, nil, dbName, logger.Nop()), "[migration] invalid user database")
	suite.Require().EqualError(RunMigrations(ctx, suite.client, "", logger.Nop()), "[migration] invalid database name")
}

func TestMigrationSuite(t *testing.T) {
	suite.Run(t, new(MigrationSuite))
}
