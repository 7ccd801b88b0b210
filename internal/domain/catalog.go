package domain

import (
	"encoding/json"
	"slices"
)

// profilesField is the JSON key the API uses for nested nutritional profiles
const profilesField = "nutritionalProfiles"

// Ingredient is a basic ingredient as served by GET /api/ingredients
type Ingredient struct {
	Record
}

// NewIngredient builds an ingredient with the given id and no payload
func NewIngredient(id int64) Ingredient {
	return Ingredient{Record: Record{ID: id}}
}

// Clone returns a deep copy of the ingredient
func (i Ingredient) Clone() Ingredient {
	return Ingredient{Record: i.Record.Clone()}
}

// NutritionalProfile is a nested sub-entity of an ingredient with its own id
type NutritionalProfile struct {
	Record
}

// NewNutritionalProfile builds a profile with the given id and no payload
func NewNutritionalProfile(id int64) NutritionalProfile {
	return NutritionalProfile{Record: Record{ID: id}}
}

// Clone returns a deep copy of the profile
func (p NutritionalProfile) Clone() NutritionalProfile {
	return NutritionalProfile{Record: p.Record.Clone()}
}

// IngredientWithProfiles is an ingredient enriched with its nutritional
// profiles, as served by GET /api/Ingredients/GetNutritionalProfiles
type IngredientWithProfiles struct {
	Ingredient
	NutritionalProfiles []NutritionalProfile
}

// Clone returns a copy whose profile slice is not shared with i
func (i IngredientWithProfiles) Clone() IngredientWithProfiles {
	if i.NutritionalProfiles == nil {
		return IngredientWithProfiles{Ingredient: i.Ingredient.Clone()}
	}
	profiles := make([]NutritionalProfile, len(i.NutritionalProfiles))
	for idx, p := range i.NutritionalProfiles {
		profiles[idx] = p.Clone()
	}
	return IngredientWithProfiles{Ingredient: i.Ingredient.Clone(), NutritionalProfiles: profiles}
}

// ProfileIndex returns the position of the profile with the given id, or -1
func (i IngredientWithProfiles) ProfileIndex(profileID int64) int {
	return slices.IndexFunc(i.NutritionalProfiles, func(p NutritionalProfile) bool {
		return p.ID == profileID
	})
}

// MarshalJSON flattens the ingredient fields and appends the profiles
func (i IngredientWithProfiles) MarshalJSON() ([]byte, error) {
	profiles := i.NutritionalProfiles
	if profiles == nil {
		profiles = []NutritionalProfile{}
	}

	rec := i.Record.Clone()
	if err := rec.Set(profilesField, profiles); err != nil {
		return nil, err
	}
	return rec.MarshalJSON()
}

// UnmarshalJSON splits the nested profiles out of the pass-through fields
func (i *IngredientWithProfiles) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := rec.UnmarshalJSON(data); err != nil {
		return err
	}

	var profiles []NutritionalProfile
	if raw, ok := rec.Fields[profilesField]; ok {
		if err := json.Unmarshal(raw, &profiles); err != nil {
			return err
		}
		delete(rec.Fields, profilesField)
	}

	i.Ingredient = Ingredient{Record: rec}
	i.NutritionalProfiles = profiles
	return nil
}

// Recipe is a recipe as served by GET /api/Recipes
type Recipe struct {
	Record
}

// NewRecipe builds a recipe with the given id and no payload
func NewRecipe(id int64) Recipe {
	return Recipe{Record: Record{ID: id}}
}

// Clone returns a deep copy of the recipe
func (r Recipe) Clone() Recipe {
	return Recipe{Record: r.Record.Clone()}
}
