package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 15 * time.Second

// MurmurStore combines all capabilities of the mongo layer.
type MurmurStore interface {
	Account
	Event
	LoadHistory

	Ping() error
	Close()
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a MurmurStore backed by a connected mongo client.
func NewMongoStore(client *mongo.Client, database string) MurmurStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return m.client.Ping(ctx, readpref.Primary())
}

func (m *mongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		log.WithField("prefix", "mongo").WithError(err).Error("fail to disconnect mongo client")
	}
}
