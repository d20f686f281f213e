package store

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aidancornelius/murmur-api/schema"
)

// Event persists and queries the four raw event kinds. Range queries
// take [start, end) unix-second windows; callers derive those from
// calendar-day boundaries.
type Event interface {
	AddActivity(activity schema.Activity) (string, error)
	AddMeal(meal schema.Meal) (string, error)
	AddSleep(sleep schema.Sleep) (string, error)
	AddSymptom(observation schema.SymptomObservation) (string, error)

	ListActivities(accountNumber string, start, end int64) ([]schema.Activity, error)
	ListMeals(accountNumber string, start, end int64) ([]schema.Meal, error)
	ListSleeps(accountNumber string, start, end int64) ([]schema.Sleep, error)
	ListSymptoms(accountNumber string, start, end int64) ([]schema.SymptomObservation, error)

	GetSymptomDistribution(accountNumber string, start, end int64) (map[string]int, error)
}

func (m *mongoDB) AddActivity(activity schema.Activity) (string, error) {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	c := m.client.Database(m.database).Collection(schema.ActivityCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.InsertOne(ctx, activity); err != nil {
		return "", err
	}
	return activity.ID, nil
}

func (m *mongoDB) AddMeal(meal schema.Meal) (string, error) {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}

	c := m.client.Database(m.database).Collection(schema.MealCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.InsertOne(ctx, meal); err != nil {
		return "", err
	}
	return meal.ID, nil
}

func (m *mongoDB) AddSleep(sleep schema.Sleep) (string, error) {
	if sleep.ID == "" {
		sleep.ID = uuid.New().String()
	}

	c := m.client.Database(m.database).Collection(schema.SleepCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.InsertOne(ctx, sleep); err != nil {
		return "", err
	}
	return sleep.ID, nil
}

func (m *mongoDB) AddSymptom(observation schema.SymptomObservation) (string, error) {
	if observation.ID == "" {
		observation.ID = uuid.New().String()
	}

	c := m.client.Database(m.database).Collection(schema.SymptomCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.InsertOne(ctx, observation); err != nil {
		return "", err
	}
	return observation.ID, nil
}

func (m *mongoDB) ListActivities(accountNumber string, start, end int64) ([]schema.Activity, error) {
	c := m.client.Database(m.database).Collection(schema.ActivityCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := c.Find(ctx, eventRangeQuery(accountNumber, "ts", start, end),
		options.Find().SetSort(bson.M{"ts": 1}))
	if err != nil {
		return nil, err
	}

	activities := make([]schema.Activity, 0)
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (m *mongoDB) ListMeals(accountNumber string, start, end int64) ([]schema.Meal, error) {
	c := m.client.Database(m.database).Collection(schema.MealCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := c.Find(ctx, eventRangeQuery(accountNumber, "ts", start, end),
		options.Find().SetSort(bson.M{"ts": 1}))
	if err != nil {
		return nil, err
	}

	meals := make([]schema.Meal, 0)
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// ListSleeps selects by wake time, matching how the engine attributes a
// sleep period to a day.
func (m *mongoDB) ListSleeps(accountNumber string, start, end int64) ([]schema.Sleep, error) {
	c := m.client.Database(m.database).Collection(schema.SleepCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := c.Find(ctx, eventRangeQuery(accountNumber, "wake_time", start, end),
		options.Find().SetSort(bson.M{"wake_time": 1}))
	if err != nil {
		return nil, err
	}

	sleeps := make([]schema.Sleep, 0)
	if err := cursor.All(ctx, &sleeps); err != nil {
		return nil, err
	}
	return sleeps, nil
}

func (m *mongoDB) ListSymptoms(accountNumber string, start, end int64) ([]schema.SymptomObservation, error) {
	c := m.client.Database(m.database).Collection(schema.SymptomCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := c.Find(ctx, eventRangeQuery(accountNumber, "ts", start, end),
		options.Find().SetSort(bson.M{"ts": 1}))
	if err != nil {
		return nil, err
	}

	symptoms := make([]schema.SymptomObservation, 0)
	if err := cursor.All(ctx, &symptoms); err != nil {
		return nil, err
	}
	return symptoms, nil
}

// GetSymptomDistribution counts symptom observations by name within a
// time window.
func (m *mongoDB) GetSymptomDistribution(accountNumber string, start, end int64) (map[string]int, error) {
	c := m.client.Database(m.database).Collection(schema.SymptomCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		AggregationMatch(eventRangeQuery(accountNumber, "ts", start, end)),
		AggregationGroup("$name", bson.D{
			bson.E{Key: "count", Value: bson.M{"$sum": 1}},
		}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int)
	for cursor.Next(ctx) {
		var result struct {
			Name  string `bson:"_id"`
			Count int    `bson:"count"`
		}
		if err := cursor.Decode(&result); err != nil {
			return nil, err
		}
		distribution[result.Name] = result.Count
	}

	return distribution, cursor.Err()
}

func eventRangeQuery(accountNumber, tsField string, start, end int64) bson.M {
	return bson.M{
		"account_number": accountNumber,
		tsField: bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}
}
