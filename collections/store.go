// Package collections is the system of record for collections and their
// recipe memberships, backed by MongoDB. Reads degrade to empty results on
// failure (logged); mutations return explicit errors from the taxonomy in
// errors.go.
package collections

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"dishcovery/db"
	"dishcovery/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListCollections returns the user's collections newest-created-first,
// without nested recipes. Any failure is logged and reported as an empty
// list; callers treat "none" and "failed" identically at this layer.
func ListCollections(ctx context.Context, userID string) []models.Collection {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.CollectionsCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		log.Printf("collections: list failed for %s: %v", userID, err)
		return []models.Collection{}
	}
	defer cursor.Close(ctx)

	var cols []models.Collection
	if err := cursor.All(ctx, &cols); err != nil {
		log.Printf("collections: decode failed for %s: %v", userID, err)
		return []models.Collection{}
	}
	if cols == nil {
		cols = []models.Collection{}
	}
	return cols
}

// GetCollection returns nil on not-found or failure.
func GetCollection(ctx context.Context, id string) *models.Collection {
	var col models.Collection
	err := db.CollectionsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&col)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("collections: get %s failed: %v", id, err)
		}
		return nil
	}
	return &col
}

// ListCollectionRecipes fetches memberships and recipes separately and merges
// them in memory, ordered by added_at descending. Empty on failure.
func ListCollectionRecipes(ctx context.Context, collectionID string) []models.RecipeRef {
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: -1}})
	cursor, err := db.MembershipsCollection.Find(ctx, bson.M{"collection_id": collectionID}, opts)
	if err != nil {
		log.Printf("collections: memberships for %s failed: %v", collectionID, err)
		return []models.RecipeRef{}
	}
	defer cursor.Close(ctx)

	var links []models.CollectionMembership
	if err := cursor.All(ctx, &links); err != nil {
		log.Printf("collections: membership decode for %s failed: %v", collectionID, err)
		return []models.RecipeRef{}
	}
	if len(links) == 0 {
		return []models.RecipeRef{}
	}

	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.RecipeID)
	}

	recCursor, err := db.RecipesCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("collections: recipes for %s failed: %v", collectionID, err)
		return []models.RecipeRef{}
	}
	defer recCursor.Close(ctx)

	var recipes []models.RecipeRef
	if err := recCursor.All(ctx, &recipes); err != nil {
		log.Printf("collections: recipe decode for %s failed: %v", collectionID, err)
		return []models.RecipeRef{}
	}

	byID := make(map[string]models.RecipeRef, len(recipes))
	for _, rec := range recipes {
		byID[rec.ID] = rec
	}

	// membership order wins; added_at comes from the link, not the recipe row
	out := make([]models.RecipeRef, 0, len(links))
	for _, l := range links {
		rec, ok := byID[l.RecipeID]
		if !ok {
			continue
		}
		rec.AddedAt = l.AddedAt
		out = append(out, rec)
	}
	return out
}

// CreateCollection makes an empty collection owned by userID. The ownership
// claim is checked against the live acting identity, never trusted from the
// argument alone.
func CreateCollection(ctx context.Context, actingUserID, userID, title, description, coverImageURL string) (*models.Collection, error) {
	if actingUserID == "" || actingUserID != userID {
		return nil, ErrAuthRequired
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	now := time.Now().UnixMilli()
	col := models.Collection{
		ID:            fmt.Sprintf("col_%s_%d", userID, now),
		UserID:        userID,
		Title:         title,
		Description:   description,
		CoverImageURL: coverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := db.CollectionsCollection.InsertOne(ctx, col); err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}
	return &col, nil
}

// CollectionUpdate carries the fields of a partial update; nil means "leave
// untouched".
type CollectionUpdate struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
}

// UpdateCollection replaces only the provided fields and bumps updated_at.
func UpdateCollection(ctx context.Context, id string, updates CollectionUpdate) (*models.Collection, error) {
	set := bson.M{"updated_at": time.Now().UnixMilli()}
	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		set["title"] = *updates.Title
	}
	if updates.Description != nil {
		set["description"] = *updates.Description
	}
	if updates.CoverImageURL != nil {
		set["cover_image_url"] = *updates.CoverImageURL
	}

	res := db.CollectionsCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var col models.Collection
	if err := res.Decode(&col); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}
	return &col, nil
}

// DeleteCollection removes the collection row and cascades its membership
// rows. Recipe rows are shared across collections and are never deleted here.
func DeleteCollection(ctx context.Context, id string) bool {
	if _, err := db.MembershipsCollection.DeleteMany(ctx, bson.M{"collection_id": id}); err != nil {
		log.Printf("collections: membership cascade for %s failed: %v", id, err)
		return false
	}
	res, err := db.CollectionsCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Printf("collections: delete %s failed: %v", id, err)
		return false
	}
	return res.DeletedCount > 0
}

// AddRecipeToCollection is two-step: upsert the shared recipe row, then link
// it. A duplicate link is an idempotent success, enforced by the unique
// (collection_id, recipe_id) index.
func AddRecipeToCollection(ctx context.Context, collectionID string, ref models.RecipeRef) bool {
	_, err := db.RecipesCollection.UpdateOne(
		ctx,
		bson.M{"_id": ref.ID},
		bson.M{
			"$set": bson.M{
				"title": ref.Title,
				"image": ref.Image,
				"tags":  ref.Tags,
			},
			"$setOnInsert": bson.M{"added_at": time.Now().UnixMilli()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("collections: recipe upsert %s failed: %v", ref.ID, err)
		return false
	}

	link := models.CollectionMembership{
		ID:           uuid.NewString(),
		CollectionID: collectionID,
		RecipeID:     ref.ID,
		AddedAt:      time.Now().UnixMilli(),
	}
	if _, err := db.MembershipsCollection.InsertOne(ctx, link); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true
		}
		log.Printf("collections: link %s -> %s failed: %v", ref.ID, collectionID, err)
		return false
	}
	return true
}

// RemoveRecipeFromCollection deletes the membership row only; absent links
// are a no-op success.
func RemoveRecipeFromCollection(ctx context.Context, collectionID, recipeID string) bool {
	_, err := db.MembershipsCollection.DeleteOne(ctx, bson.M{
		"collection_id": collectionID,
		"recipe_id":     recipeID,
	})
	if err != nil {
		log.Printf("collections: unlink %s from %s failed: %v", recipeID, collectionID, err)
		return false
	}
	return true
}
