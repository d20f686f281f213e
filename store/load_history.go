package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aidancornelius/murmur-api/schema"
)

type LoadHistory interface {
	AddLoadRecord(accountNumber string, score schema.LoadScore) error
	GetLoadRecord(accountNumber, date string) (*schema.LoadRecord, error)
	GetLoadHistory(accountNumber, startDate, endDate string) ([]schema.LoadRecord, error)
	GetLoadAverage(accountNumber, startDate, endDate string) (float64, error)
}

// AddLoadRecord upserts the day's snapshot so recalculating a day
// overwrites its earlier record.
func (m *mongoDB) AddLoadRecord(accountNumber string, score schema.LoadScore) error {
	c := m.client.Database(m.database).Collection(schema.LoadHistoryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	date := score.Date.Format(schema.DayKeyFormat)
	query := bson.M{"account_number": accountNumber, "date": date}
	update := bson.M{
		"$set": bson.M{
			"raw_load":     score.RawLoad,
			"decayed_load": score.DecayedLoad,
			"risk_level":   score.RiskLevel,
			"ts":           score.Date.Unix(),
		},
		"$setOnInsert": bson.M{
			"account_number": accountNumber,
			"date":           date,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx, query, update, opts)
	return err
}

func (m *mongoDB) GetLoadRecord(accountNumber, date string) (*schema.LoadRecord, error) {
	c := m.client.Database(m.database).Collection(schema.LoadHistoryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var record schema.LoadRecord
	err := c.FindOne(ctx, bson.M{"account_number": accountNumber, "date": date}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (m *mongoDB) GetLoadHistory(accountNumber, startDate, endDate string) ([]schema.LoadRecord, error) {
	c := m.client.Database(m.database).Collection(schema.LoadHistoryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"account_number": accountNumber,
		"date":           bson.M{"$gte": startDate, "$lte": endDate},
	}
	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}

	records := make([]schema.LoadRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (m *mongoDB) GetLoadAverage(accountNumber, startDate, endDate string) (float64, error) {
	c := m.client.Database(m.database).Collection(schema.LoadHistoryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		AggregationMatch(bson.M{
			"account_number": accountNumber,
			"date":           bson.M{"$gte": startDate, "$lte": endDate},
		}),
		AggregationGroup("$account_number", bson.D{
			bson.E{Key: "avg", Value: bson.M{"$avg": "$decayed_load"}},
		}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	if !cursor.Next(ctx) {
		return 0, nil
	}

	var result struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.Decode(&result); err != nil {
		return 0, err
	}

	return result.Avg, nil
}
