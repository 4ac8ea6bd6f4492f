package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

const workoutsCollection = "workouts"

type WorkoutRepository struct {
	coll *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{coll: db.Collection(workoutsCollection)}
}

func (r *WorkoutRepository) Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *w
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}
	return &created, nil
}

func (r *WorkoutRepository) FindByID(ctx context.Context, id string) (*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Workout
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("find workout: %w", err)
	}
	return &w, nil
}

func (r *WorkoutRepository) FindByOwnerAndDate(ctx context.Context, ownerID, date string) (*domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Workout
	filter := bson.M{"owner_id": ownerID, "date": date}
	if err := r.coll.FindOne(ctx, filter).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("find workout by date: %w", err)
	}
	return &w, nil
}

func (r *WorkoutRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer cur.Close(ctx)

	var workouts []domain.Workout
	if err := cur.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("decode workouts: %w", err)
	}
	return workouts, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, w *domain.Workout) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": w.ID}, w)
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

// EnsureIndexes creates the compound owner/date index backing the
// one-workout-per-day lookup.
func (r *WorkoutRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
