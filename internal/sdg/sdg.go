// Package sdg owns the single category → UN Sustainable Development Goal
// lookup table. Every view derives SDG labels from here and never
// reimplements the mapping.
package sdg

import "github.com/Santosh-Singh382/citizenloop/internal/models"

var goalByCategory = map[models.Category]string{
	models.CategoryWaste:       "SDG 11: Sustainable Cities",
	models.CategoryWater:       "SDG 6: Clean Water & Sanitation",
	models.CategoryRoad:        "SDG 9: Industry, Innovation & Infrastructure",
	models.CategoryStreetlight: "SDG 7: Affordable & Clean Energy",
	models.CategoryHazard:      "SDG 3: Good Health & Well-being",
}

// Resolve returns the SDG label for a category. It returns
// models.ErrUnknownCategory for a category outside the closed set.
func Resolve(category models.Category) (string, error) {
	goal, ok := goalByCategory[category]
	if !ok {
		return "", models.ErrUnknownCategory
	}
	return goal, nil
}

// Goals lists every SDG label in the table, following category declaration
// order.
func Goals() []string {
	goals := make([]string, 0, len(goalByCategory))
	for _, c := range models.Categories() {
		goals = append(goals, goalByCategory[c])
	}
	return goals
}
