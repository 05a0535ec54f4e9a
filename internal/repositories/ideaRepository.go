package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"appideas/internal/database"
	"appideas/internal/models"
	"appideas/internal/utils"
)

const (
	ideasCollection    = "ideas"
	countersCollection = "counters"
	ideaCounterID      = "ideas"
)

type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) (*models.Idea, error)
	FindAll(ctx context.Context) ([]models.Idea, error)
	FindSaved(ctx context.Context) ([]models.Idea, error)
	FindByID(ctx context.Context, id int64) (*models.Idea, error)
	Update(ctx context.Context, id int64, update models.IdeaUpdate) (*models.Idea, error)
	ToggleSaved(ctx context.Context, id int64) (*models.Idea, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ideaRepository struct {
	db database.Service
}

func NewIdeaRepository(db database.Service) IdeaRepository {
	return &ideaRepository{db: db}
}

func (r *ideaRepository) collection() *mongo.Collection {
	return r.db.Database().Collection(ideasCollection)
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func (r *ideaRepository) nextID(ctx context.Context) (int64, error) {
	q := utils.StartQueryTimer("idea", "nextID")
	defer q.ObserveDuration()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var c counter
	err := r.db.Database().Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": ideaCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		q.Fail()
		log.Error().Err(err).Msg("Failed to increment idea counter")
		return 0, fmt.Errorf("failed to allocate idea id: %w", err)
	}
	return c.Seq, nil
}

func (r *ideaRepository) Create(ctx context.Context, idea *models.Idea) (*models.Idea, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	q := utils.StartQueryTimer("idea", "create")
	defer q.ObserveDuration()

	stored := idea.Clone()
	stored.ID = id
	if _, err := r.collection().InsertOne(ctx, stored); err != nil {
		q.Fail()
		log.Error().Err(err).Int64("idea_id", id).Msg("Failed to insert idea into database")
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return &stored, nil
}

func (r *ideaRepository) find(ctx context.Context, queryType string, filter bson.M) ([]models.Idea, error) {
	q := utils.StartQueryTimer("idea", queryType)
	defer q.ObserveDuration()

	cursor, err := r.collection().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		q.Fail()
		log.Error().Err(err).Str("query", queryType).Msg("Error finding ideas")
		return nil, fmt.Errorf("failed to retrieve ideas: %w", err)
	}
	defer cursor.Close(ctx)

	ideas := []models.Idea{}
	if err := cursor.All(ctx, &ideas); err != nil {
		q.Fail()
		log.Error().Err(err).Str("query", queryType).Msg("Error decoding ideas")
		return nil, fmt.Errorf("failed to decode ideas: %w", err)
	}
	return ideas, nil
}

func (r *ideaRepository) FindAll(ctx context.Context) ([]models.Idea, error) {
	return r.find(ctx, "findAll", bson.M{})
}

func (r *ideaRepository) FindSaved(ctx context.Context) ([]models.Idea, error) {
	return r.find(ctx, "findSaved", bson.M{"saved": true})
}

func (r *ideaRepository) FindByID(ctx context.Context, id int64) (*models.Idea, error) {
	q := utils.StartQueryTimer("idea", "findByID")
	defer q.ObserveDuration()

	var idea models.Idea
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&idea)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrIdeaNotFound
		}
		q.Fail()
		log.Error().Err(err).Int64("idea_id", id).Msg("Error finding idea by ID")
		return nil, fmt.Errorf("failed to retrieve idea: %w", err)
	}
	return &idea, nil
}

func (r *ideaRepository) Update(ctx context.Context, id int64, update models.IdeaUpdate) (*models.Idea, error) {
	updateFields := buildUpdateFields(update)
	if len(updateFields) == 0 {
		return nil, models.ErrNoUpdateFields
	}

	q := utils.StartQueryTimer("idea", "update")
	defer q.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var idea models.Idea
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updateFields}, opts).Decode(&idea)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrIdeaNotFound
		}
		q.Fail()
		log.Error().Err(err).Int64("idea_id", id).Msg("Error updating idea")
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}
	return &idea, nil
}

// ToggleSaved flips saved in a single pipeline update.
func (r *ideaRepository) ToggleSaved(ctx context.Context, id int64) (*models.Idea, error) {
	q := utils.StartQueryTimer("idea", "toggleSaved")
	defer q.ObserveDuration()

	toggle := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "saved", Value: bson.D{{Key: "$not", Value: "$saved"}}}}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var idea models.Idea
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, toggle, opts).Decode(&idea)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrIdeaNotFound
		}
		q.Fail()
		log.Error().Err(err).Int64("idea_id", id).Msg("Error toggling idea saved state")
		return nil, fmt.Errorf("failed to toggle idea: %w", err)
	}
	return &idea, nil
}

func (r *ideaRepository) Delete(ctx context.Context, id int64) (bool, error) {
	q := utils.StartQueryTimer("idea", "delete")
	defer q.ObserveDuration()

	result, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		q.Fail()
		log.Error().Err(err).Int64("idea_id", id).Msg("Error deleting idea")
		return false, fmt.Errorf("failed to delete idea: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// buildUpdateFields maps the set fields of an update to their document keys.
func buildUpdateFields(update models.IdeaUpdate) bson.M {
	fields := bson.M{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Complexity != nil {
		fields["complexity"] = *update.Complexity
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.TechStack != nil {
		fields["tech_stack"] = *update.TechStack
	}
	if update.Audience != nil {
		fields["audience"] = *update.Audience
	}
	if update.Features != nil {
		fields["features"] = *update.Features
	}
	if update.TechnicalConsiderations != nil {
		fields["technical_considerations"] = *update.TechnicalConsiderations
	}
	if update.Tags != nil {
		fields["tags"] = *update.Tags
	}
	if update.Saved != nil {
		fields["saved"] = *update.Saved
	}
	return fields
}
