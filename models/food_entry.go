package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal (photo → analysis → confirmed entry).
// Entries are immutable once created; there is no update/delete path.
type FoodEntry struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Date     time.Time `gorm:"type:date;index;not null" json:"date"` // calendar day, no time component
	MealType string    `gorm:"size:16;not null" json:"meal_type"`    // breakfast|lunch|dinner|snack
	Time     string    `gorm:"size:8" json:"time"`                   // wall clock, "HH:MM:SS"

	FoodName           string  `json:"food_name"`
	Description        string  `gorm:"type:text" json:"description"`
	FoodCategory       string  `json:"food_category"`
	PortionSize        float64 `json:"portion_size"` // grams
	PortionDescription string  `json:"portion_description"`
	ConfidenceScore    float64 `json:"confidence_score"` // model-reported, expected in [0,1]
	ImageURL           string  `json:"image_url"`

	// Exactly one of each is written with the entry. A nil profile means
	// the child insert failed after the parent was saved (see entry service).
	Macros *Macronutrients `gorm:"foreignKey:FoodEntryID" json:"macronutrients,omitempty"`
	Micros *Micronutrients `gorm:"foreignKey:FoodEntryID" json:"micronutrients,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type Macronutrients struct {
	gorm.Model  `json:"-"`
	FoodEntryID string `gorm:"type:uuid;uniqueIndex;not null" json:"food_entry_id"`

	Calories           float64 `json:"calories"`
	Protein            float64 `json:"protein"`
	Carbohydrates      float64 `json:"carbohydrates"`
	TotalCarbs         float64 `json:"total_carbs"`
	DietaryFiber       float64 `json:"dietary_fiber"`
	NetCarbs           float64 `json:"net_carbs"`
	TotalFat           float64 `json:"total_fat"`
	SaturatedFat       float64 `json:"saturated_fat"`
	TransFat           float64 `json:"trans_fat"`
	MonounsaturatedFat float64 `json:"monounsaturated_fat"`
	PolyunsaturatedFat float64 `json:"polyunsaturated_fat"`
	Cholesterol        float64 `json:"cholesterol"`
	Sodium             float64 `json:"sodium"`
	Sugar              float64 `json:"sugar"`
	AddedSugar         float64 `json:"added_sugar"`
}

type Micronutrients struct {
	gorm.Model  `json:"-"`
	FoodEntryID string `gorm:"type:uuid;uniqueIndex;not null" json:"food_entry_id"`

	VitaminA   float64 `json:"vitamin_a"`
	VitaminC   float64 `json:"vitamin_c"`
	VitaminD   float64 `json:"vitamin_d"`
	VitaminE   float64 `json:"vitamin_e"`
	VitaminK   float64 `json:"vitamin_k"`
	VitaminB1  float64 `gorm:"column:vitamin_b1_thiamine" json:"vitamin_b1_thiamine"`
	VitaminB2  float64 `gorm:"column:vitamin_b2_riboflavin" json:"vitamin_b2_riboflavin"`
	VitaminB3  float64 `gorm:"column:vitamin_b3_niacin" json:"vitamin_b3_niacin"`
	VitaminB5  float64 `gorm:"column:vitamin_b5_pantothenic_acid" json:"vitamin_b5_pantothenic_acid"`
	VitaminB6  float64 `gorm:"column:vitamin_b6_pyridoxine" json:"vitamin_b6_pyridoxine"`
	VitaminB7  float64 `gorm:"column:vitamin_b7_biotin" json:"vitamin_b7_biotin"`
	VitaminB9  float64 `gorm:"column:vitamin_b9_folate" json:"vitamin_b9_folate"`
	VitaminB12 float64 `gorm:"column:vitamin_b12_cobalamin" json:"vitamin_b12_cobalamin"`

	Calcium    float64 `json:"calcium"`
	Iron       float64 `json:"iron"`
	Magnesium  float64 `json:"magnesium"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Zinc       float64 `json:"zinc"`
	Copper     float64 `json:"copper"`
	Manganese  float64 `json:"manganese"`
	Selenium   float64 `json:"selenium"`
	Iodine     float64 `json:"iodine"`
	Chromium   float64 `json:"chromium"`
	Molybdenum float64 `json:"molybdenum"`
}
