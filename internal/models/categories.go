// ABOUTME: Static BMI category reference table
// ABOUTME: Labels, colors, descriptions, and health tips for the four categories

package models

// Category is a BMI classification band with display data and health tips.
type Category struct {
	Name        string   `json:"name" yaml:"name"`
	Range       string   `json:"range" yaml:"range"`
	Color       string   `json:"color" yaml:"color"`
	Description string   `json:"description" yaml:"description"`
	Tips        []string `json:"tips" yaml:"tips"`
}

// Indexes into the category table, in ascending BMI order.
const (
	Underweight = iota
	Normal
	Overweight
	Obese
)

var categories = [...]Category{
	Underweight: {
		Name:        "Underweight",
		Range:       "< 18.5",
		Color:       "#3498db",
		Description: "You may be underweight. Consider consulting with a healthcare professional about healthy weight gain strategies.",
		Tips: []string{
			"Eat nutrient-dense foods more frequently",
			"Include healthy fats in your diet",
			"Consider strength training exercises",
			"Consult with a healthcare provider",
		},
	},
	Normal: {
		Name:        "Normal weight",
		Range:       "18.5 - 24.9",
		Color:       "#2ecc71",
		Description: "You have a healthy weight! Maintain your current lifestyle with balanced nutrition and regular exercise.",
		Tips: []string{
			"Maintain a balanced diet with variety",
			"Stay physically active with regular exercise",
			"Get adequate sleep and manage stress",
			"Schedule regular health check-ups",
		},
	},
	Overweight: {
		Name:        "Overweight",
		Range:       "25.0 - 29.9",
		Color:       "#f39c12",
		Description: "You may be overweight. Consider adopting healthier eating habits and increasing physical activity.",
		Tips: []string{
			"Focus on portion control",
			"Increase daily physical activity",
			"Choose whole foods over processed foods",
			"Stay hydrated throughout the day",
		},
	},
	Obese: {
		Name:        "Obese",
		Range:       "≥ 30.0",
		Color:       "#e74c3c",
		Description: "You may be in the obesity range. It's recommended to consult with a healthcare professional for personalized advice.",
		Tips: []string{
			"Seek guidance from healthcare professionals",
			"Start with small, sustainable changes",
			"Focus on gradual weight loss goals",
			"Consider joining a support group",
		},
	},
}

// CategoryAt returns a copy of the category at index i (Underweight..Obese).
func CategoryAt(i int) Category {
	c := categories[i]
	c.Tips = append([]string(nil), c.Tips...)
	return c
}

// Categories returns a copy of all categories in ascending BMI order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = CategoryAt(i)
	}
	return out
}
