package models

import "fmt"

// MenuItem represents a dish on the menu.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PrepTime    int      `json:"prep_time_minutes"`
	Available   bool     `json:"available"`
	SpiceLevel  int      `json:"spice_level"`
	Calories    int      `json:"calories,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
}

// ValidateMenuItem validates a menu item before it enters the catalog.
// A zero calorie count means unknown and is accepted.
func ValidateMenuItem(item *MenuItem) error {
	if item.ID == "" {
		return fmt.Errorf("menu item id is required: %w", ErrInvalidValue)
	}
	if item.Name == "" {
		return fmt.Errorf("menu item name is required: %w", ErrInvalidValue)
	}
	if item.Category == "" {
		return fmt.Errorf("menu item category is required: %w", ErrInvalidValue)
	}
	if item.Price < 0 {
		return fmt.Errorf("menu item price must not be negative: %w", ErrInvalidValue)
	}
	if item.PrepTime < 0 {
		return fmt.Errorf("menu item prep time must not be negative: %w", ErrInvalidValue)
	}
	if item.SpiceLevel < 0 || item.SpiceLevel > 5 {
		return fmt.Errorf("menu item spice level must be between 0 and 5: %w", ErrInvalidValue)
	}
	if item.Calories < 0 {
		return fmt.Errorf("menu item calorie count must not be negative: %w", ErrInvalidValue)
	}
	return nil
}

// HasIngredient checks if the item contains a specific ingredient.
func (mi *MenuItem) HasIngredient(ingredient string) bool {
	for _, ing := range mi.Ingredients {
		if ing == ingredient {
			return true
		}
	}
	return false
}

// HasAllergen checks if the item carries a specific allergen.
func (mi *MenuItem) HasAllergen(allergen string) bool {
	for _, alg := range mi.Allergens {
		if alg == allergen {
			return true
		}
	}
	return false
}
