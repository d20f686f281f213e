package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aidancornelius/murmur-api/schema"
)

var (
	ErrAccountTaken    = errors.New("account number already registered")
	ErrAccountNotFound = errors.New("account not found")
)

type Account interface {
	CreateAccount(accountNumber string, metadata map[string]interface{}) (*schema.Profile, error)
	GetProfile(accountNumber string) (*schema.Profile, error)
	UpdateLoadConfiguration(accountNumber string, configuration schema.LoadConfiguration) error
	ListAccountNumbers() ([]string, error)
}

func (m *mongoDB) CreateAccount(accountNumber string, metadata map[string]interface{}) (*schema.Profile, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	count, err := c.CountDocuments(ctx, bson.M{"account_number": accountNumber})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAccountTaken
	}

	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	profile := schema.Profile{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Metadata:      metadata,
	}
	if _, err := c.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &profile, nil
}

func (m *mongoDB) GetProfile(accountNumber string) (*schema.Profile, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var profile schema.Profile
	err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (m *mongoDB) UpdateLoadConfiguration(accountNumber string, configuration schema.LoadConfiguration) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": bson.M{"configuration": configuration}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (m *mongoDB) ListAccountNumbers() ([]string, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accountNumbers := make([]string, 0)
	for cursor.Next(ctx) {
		var profile schema.Profile
		if err := cursor.Decode(&profile); err != nil {
			return nil, err
		}
		accountNumbers = append(accountNumbers, profile.AccountNumber)
	}

	return accountNumbers, cursor.Err()
}
