// Package normalize converts the heterogeneous recipe shapes the app sees
// (provider search results, provider detail documents, already-stored refs)
// into the one canonical RecipeRef used everywhere downstream. It is pure and
// never fails: absent fields resolve to fixed fallbacks.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"dishcovery/models"
)

const (
	FallbackTitle = "Untitled Recipe"
	FallbackImage = "/food.png"

	maxTags = 3
)

// FromSearchResult builds a RecipeRef from a search hit, deriving tags.
func FromSearchResult(r models.RawSearchResult) models.RecipeRef {
	return build(strconv.FormatInt(r.ID, 10), r.Title, r.Image,
		BuildTags(r.Diets, r.VeryHealthy, r.HealthScore, r.ReadyInMinutes))
}

// FromDetail builds a RecipeRef from a detail document, deriving tags.
func FromDetail(r models.RawDetailResult) models.RecipeRef {
	return build(strconv.FormatInt(r.ID, 10), r.Title, r.Image,
		BuildTags(r.Diets, r.VeryHealthy, r.HealthScore, r.ReadyInMinutes))
}

// FromStored re-normalizes an existing ref. Tags were derived at capture time
// and are kept as-is (capped, never recomputed); fallbacks still apply.
func FromStored(r models.RecipeRef) models.RecipeRef {
	tags := r.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	out := build(r.ID, r.Title, r.Image, tags)
	out.AddedAt = r.AddedAt
	return out
}

func build(id, title, image string, tags []string) models.RecipeRef {
	if title == "" {
		title = FallbackTitle
	}
	if image == "" {
		image = FallbackImage
	}
	if tags == nil {
		tags = []string{}
	}
	return models.RecipeRef{
		ID:      id,
		Title:   title,
		Image:   image,
		Tags:    tags,
		AddedAt: time.Now().UnixMilli(),
	}
}

// BuildTags derives display tags from provider fields. Order is fixed
// (Vegan, Vegetarian, Healthy, Quick) and the result is capped at 3; the UI
// depends on both.
func BuildTags(diets []string, veryHealthy bool, healthScore float64, readyInMinutes int) []string {
	tags := []string{}
	for _, d := range diets {
		if d == "vegan" {
			tags = append(tags, "Vegan")
			break
		}
	}
	for _, d := range diets {
		if strings.Contains(d, "vegetarian") {
			tags = append(tags, "Vegetarian")
			break
		}
	}
	if veryHealthy || healthScore >= 60 {
		tags = append(tags, "Healthy")
	}
	if readyInMinutes > 0 && readyInMinutes <= 30 {
		tags = append(tags, "Quick")
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	return tags
}
