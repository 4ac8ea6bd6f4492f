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

const exercisesCollection = "exercises"

type ExerciseRepository struct {
	coll *mongo.Collection
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{coll: db.Collection(exercisesCollection)}
}

func (r *ExerciseRepository) Create(ctx context.Context, ex *domain.Exercise) (*domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *ex
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrExerciseNameTaken
		}
		return nil, fmt.Errorf("insert exercise: %w", err)
	}
	return &created, nil
}

// FindByID returns the exercise regardless of its active flag; the policy
// layer decides whether a soft-deleted row is visible.
func (r *ExerciseRepository) FindByID(ctx context.Context, id string) (*domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ex domain.Exercise
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ex); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}
	return &ex, nil
}

func (r *ExerciseRepository) FindByName(ctx context.Context, name string) (*domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ex domain.Exercise
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&ex); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise by name: %w", err)
	}
	return &ex, nil
}

func (r *ExerciseRepository) FindAll(ctx context.Context) ([]domain.Exercise, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer cur.Close(ctx)

	var exercises []domain.Exercise
	if err := cur.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return exercises, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, ex *domain.Exercise) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": ex.ID}, ex)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrExerciseNameTaken
		}
		return fmt.Errorf("update exercise: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrExerciseNotFound
	}
	return nil
}

// EnsureIndexes creates the unique name index.
func (r *ExerciseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	})
	return err
}
