package usertags

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const CollectionName = "user_tags"

const pageSize = 100

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go
type Repository interface {
	GetUserTag(ctx context.Context, filters bson.M) (*UserTag, error)
	GetUserTagList(ctx context.Context, filters bson.M, page int) ([]*UserTag, error)
	GetAllUserTags(ctx context.Context, filters bson.M) ([]*UserTag, error)

	CreateUserTags(ctx context.Context, tags []*UserTag) error
	DeleteUserTag(ctx context.Context, filters bson.M) error
}

type repository struct {
	db             *mongo.Client
	dbName         string
	collectionName string
	logger         *zap.SugaredLogger
}

func NewRepository(db *mongo.Client, dbName string, logger *zap.SugaredLogger) (Repository, error) {
	if db == nil {
		return nil, errors.New("[usertags_repository] invalid user database")
	}
	if dbName == "" {
		return nil, errors.New("[usertags_repository] invalid database name")
	}
	if logger == nil {
		return nil, errors.New("[usertags_repository] invalid logger")
	}

	return &repository{db: db, dbName: dbName, collectionName: CollectionName, logger: logger}, nil
}

func (r *repository) collection() *mongo.Collection {
	return r.db.Database(r.dbName).Collection(r.collectionName)
}

func (r *repository) GetUserTag(ctx context.Context, filters bson.M) (*UserTag, error) {
	var tag UserTag
	err := r.collection().FindOne(ctx, filters).Decode(&tag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.logger.Errorf("unable to find user tag due to internal error: %v", err)
		return nil, err
	}

	return &tag, nil
}

// GetUserTagList returns one page of tags, newest first. Pages start at 1.
func (r *repository) GetUserTagList(ctx context.Context, filters bson.M, page int) ([]*UserTag, error) {
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * pageSize

	opts := options.Find().
		SetSort(bson.D{{Key: "lastmod", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(pageSize)

	return r.find(ctx, filters, opts)
}

func (r *repository) GetAllUserTags(ctx context.Context, filters bson.M) ([]*UserTag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "address", Value: 1}, {Key: "lastmod", Value: 1}})
	return r.find(ctx, filters, opts)
}

func (r *repository) find(ctx context.Context, filters bson.M, opts *options.FindOptions) ([]*UserTag, error) {
	cur, err := r.collection().Find(ctx, filters, opts)
	if err != nil {
		r.logger.Errorf("unable to find user tags due to internal error: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	tags := []*UserTag{}
	if err := cur.All(ctx, &tags); err != nil {
		r.logger.Errorf("unable to decode user tags: %v", err)
		return nil, err
	}

	return tags, nil
}

func (r *repository) CreateUserTags(ctx context.Context, tags []*UserTag) error {
	if len(tags) == 0 {
		return nil
	}

	docs := make([]any, len(tags))
	for i, t := range tags {
		docs[i] = t
	}

	if _, err := r.collection().InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Errorf("failed to insert user tags due duplicate error: %s", err)
			return errors.New("user tag already exist")
		}
		r.logger.Errorf("failed to insert user tags: %s", err)
		return errors.New("failed to create user tags")
	}

	return nil
}

func (r *repository) DeleteUserTag(ctx context.Context, filters bson.M) error {
	res, err := r.collection().DeleteOne(ctx, filters)
	if err != nil {
		r.logger.Errorf("failed to delete user tag: %v", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserTagNotFound
	}

	return nil
}
