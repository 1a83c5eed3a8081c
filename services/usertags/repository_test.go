package usertags

import (
	"context"
	"fmt"
	"testing"
	"time"

	"graphsense-dashboard/pkg/logger"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserTagsTestSuite struct {
	suite.Suite
	pool       *dockertest.Pool
	resource   *dockertest.Resource
	client     *mongo.Client
	repository Repository
}

func (suite *UserTagsTestSuite) SetupSuite() {
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

	repository, err := NewRepository(suite.client, "test", logger.Nop())
	suite.Require().NoError(err)
	suite.repository = repository
}

func (suite *UserTagsTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pool.Purge(suite.resource))
}

func (suite *UserTagsTestSuite) SetupTest() {
	_, err := suite.client.Database("test").Collection(CollectionName).DeleteMany(context.Background(), bson.M{})
	suite.Require().NoError(err)
}

func (suite *UserTagsTestSuite) newTag(currency, address, label string) *UserTag {
	tag, err := NewUserTag("btc", address, label)
	suite.Require().NoError(err)
	tag.Currency = currency
	return tag
}

func (suite *UserTagsTestSuite) TestCreateAndGetUserTag() {
	ctx := context.Background()
	tag := suite.newTag("btc", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "genesis")
	tag.Category = "miner"

	suite.Require().NoError(suite.repository.CreateUserTags(ctx, []*UserTag{tag}))

	got, err := suite.repository.GetUserTag(ctx, bson.M{"_id": tag.ID})
	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Require().Equal(tag.Label, got.Label)
	suite.Require().Equal(tag.Category, got.Category)
	suite.Require().True(tag.Lastmod.Equal(got.Lastmod))

	missing, err := suite.repository.GetUserTag(ctx, bson.M{"label": "nothing"})
	suite.Require().NoError(err)
	suite.Require().Nil(missing)
}

func (suite *UserTagsTestSuite) TestDuplicateID() {
	ctx := context.Background()
	tag := suite.newTag("btc", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "genesis")

	suite.Require().NoError(suite.repository.CreateUserTags(ctx, []*UserTag{tag}))
	suite.Require().EqualError(suite.repository.CreateUserTags(ctx, []*UserTag{tag}), "user tag already exist")
}

func (suite *UserTagsTestSuite) TestGetUserTagList() {
	ctx := context.Background()

	tags := make([]*UserTag, 0, pageSize+5)
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < pageSize+5; i++ {
		tag := suite.newTag("btc", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", fmt.Sprintf("label-%d", i))
		tag.Lastmod = base.Add(time.Duration(i) * time.Minute)
		tags = append(tags, tag)
	}
	tags = append(tags, suite.newTag("ltc", "LZ3mCpUN8ktwSaTHQNR8L1jyzBuZc6tJaP", "other"))
	suite.Require().NoError(suite.repository.CreateUserTags(ctx, tags))

	first, err := suite.repository.GetUserTagList(ctx, bson.M{"currency": "btc"}, 1)
	suite.Require().NoError(err)
	suite.Require().Len(first, pageSize)
	suite.Require().Equal(fmt.Sprintf("label-%d", pageSize+4), first[0].Label)

	second, err := suite.repository.GetUserTagList(ctx, bson.M{"currency": "btc"}, 2)
	suite.Require().NoError(err)
	suite.Require().Len(second, 5)

	empty, err := suite.repository.GetUserTagList(ctx, bson.M{"currency": "zec"}, 1)
	suite.Require().NoError(err)
	suite.Require().NotNil(empty)
	suite.Require().Len(empty, 0)

	all, err := suite.repository.GetAllUserTags(ctx, bson.M{"currency": "btc"})
	suite.Require().NoError(err)
	suite.Require().Len(all, pageSize+5)
}

func (suite *UserTagsTestSuite) TestDeleteUserTag() {
	ctx := context.Background()
	tag := suite.newTag("btc", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "genesis")
	suite.Require().NoError(suite.repository.CreateUserTags(ctx, []*UserTag{tag}))

	suite.Require().ErrorIs(suite.repository.DeleteUserTag(ctx, bson.M{"_id": tag.ID, "currency": "ltc"}), ErrUserTagNotFound)
	suite.Require().NoError(suite.repository.DeleteUserTag(ctx, bson.M{"_id": tag.ID, "currency": "btc"}))
	suite.Require().ErrorIs(suite.repository.DeleteUserTag(ctx, bson.M{"_id": tag.ID}), ErrUserTagNotFound)
}

func TestUserTagsTestSuite(t *testing.T) {
	suite.Run(t, new(UserTagsTestSuite))
}
