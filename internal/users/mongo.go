package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Mongo is a Store persisting to a MongoDB collection.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongo connects to MongoDB and returns a Store backed by the
// "users" collection of the given database.
func ConnectMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to reach MongoDB: %w", err)
	}

	return &Mongo{
		client:     client,
		collection: client.Database(database).Collection("users"),
	}, nil
}

func (m *Mongo) User(ctx context.Context, id string) (User, error) {
	return m.findOne(ctx, bson.M{"id": id})
}

func (m *Mongo) UserByUsername(ctx context.Context, username string) (User, error) {
	return m.findOne(ctx, bson.M{"username": username})
}

func (m *Mongo) UserByProviderID(ctx context.Context, providerID string) (User, error) {
	return m.findOne(ctx, bson.M{"providerId": providerID})
}

func (m *Mongo) Create(ctx context.Context, user User) (User, error) {
	user.ID = uuid.NewString()

	_, err := m.collection.InsertOne(ctx, user)
	if err != nil {
		return User{}, err
	}

	return user, nil
}

func (m *Mongo) Update(ctx context.Context, id string, update Update) (User, error) {
	set := bson.M{}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.ProviderID != nil {
		set["providerId"] = *update.ProviderID
	}

	if len(set) == 0 {
		return m.User(ctx, id)
	}

	var user User
	err := m.collection.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Disconnect closes the connection to MongoDB.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) findOne(ctx context.Context, filter bson.M) (User, error) {
	var user User

	err := m.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}
