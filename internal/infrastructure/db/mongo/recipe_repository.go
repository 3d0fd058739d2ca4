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

	"github.com/recipebox/recipe-service/internal/core/domain"
)

const collectionRecipes = "recipes"

type RecipeRepository struct {
	col *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{col: db.Collection(collectionRecipes)}
}

type mongoRecipe struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Ingredients  []string           `bson:"ingredients"`
	Instructions string             `bson:"instructions"`
	Image        string             `bson:"image,omitempty"`
	Author       primitive.ObjectID `bson:"author"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toMongoRecipe(r *domain.Recipe) (mongoRecipe, error) {
	author, err := primitive.ObjectIDFromHex(r.AuthorID)
	if err != nil {
		return mongoRecipe{}, fmt.Errorf("invalid author id %q: %w", r.AuthorID, err)
	}
	doc := mongoRecipe{
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Image:        r.Image,
		Author:       author,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.ID != "" {
		if doc.ID, err = primitive.ObjectIDFromHex(r.ID); err != nil {
			return mongoRecipe{}, domain.ErrRecipeNotFound
		}
	}
	return doc, nil
}

func (m *mongoRecipe) toDomain() *domain.Recipe {
	ingredients := m.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return &domain.Recipe{
		ID:           m.ID.Hex(),
		Title:        m.Title,
		Description:  m.Description,
		Ingredients:  ingredients,
		Instructions: m.Instructions,
		Image:        m.Image,
		AuthorID:     m.Author.Hex(),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

// Create inserts a new recipe document.
func (r *RecipeRepository) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	doc, err := toMongoRecipe(rec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoRecipe
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	return r.find(ctx, bson.M{})
}

// ListByAuthor returns the recipes whose author reference matches authorID.
func (r *RecipeRepository) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return []*domain.Recipe{}, nil
	}
	return r.find(ctx, bson.M{"author": oid})
}

func (r *RecipeRepository) Update(ctx context.Context, rec *domain.Recipe) error {
	doc, err := toMongoRecipe(rec)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, doc.ID, bson.M{"$set": bson.M{
		"title":        doc.Title,
		"description":  doc.Description,
		"ingredients":  doc.Ingredients,
		"instructions": doc.Instructions,
		"image":        doc.Image,
		"updated_at":   doc.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the recipes collection.
func (r *RecipeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *RecipeRepository) find(ctx context.Context, filter bson.M) ([]*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoRecipe
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}

	recipes := make([]*domain.Recipe, 0, len(docs))
	for i := range docs {
		recipes = append(recipes, docs[i].toDomain())
	}
	return recipes, nil
}
