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

const workoutExercisesCollection = "workout_exercises"

type WorkoutExerciseRepository struct {
	coll *mongo.Collection
}

func NewWorkoutExerciseRepository(db *mongo.Database) *WorkoutExerciseRepository {
	return &WorkoutExerciseRepository{coll: db.Collection(workoutExercisesCollection)}
}

func (r *WorkoutExerciseRepository) Create(ctx context.Context, we *domain.WorkoutExercise) (*domain.WorkoutExercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *we
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert workout exercise: %w", err)
	}
	return &created, nil
}

func (r *WorkoutExerciseRepository) FindByID(ctx context.Context, id string) (*domain.WorkoutExercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var we domain.WorkoutExercise
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&we); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkoutExerciseNotFound
		}
		return nil, fmt.Errorf("find workout exercise: %w", err)
	}
	return &we, nil
}

func (r *WorkoutExerciseRepository) FindByWorkout(ctx context.Context, workoutID string) ([]domain.WorkoutExercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"workout_id": workoutID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.WorkoutExercise
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode workout exercises: %w", err)
	}
	return entries, nil
}

func (r *WorkoutExerciseRepository) Update(ctx context.Context, we *domain.WorkoutExercise) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": we.ID}, we)
	if err != nil {
		return fmt.Errorf("update workout exercise: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWorkoutExerciseNotFound
	}
	return nil
}

func (r *WorkoutExerciseRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete workout exercise: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkoutExerciseNotFound
	}
	return nil
}

func (r *WorkoutExerciseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "workout_id", Value: 1}},
	})
	return err
}
