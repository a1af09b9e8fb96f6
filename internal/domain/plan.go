package domain

// MealType distinguishes the meals within a day.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// Exercise is a single movement within a day's workout.
type Exercise struct {
	Name  string `bson:"name" json:"name"`
	Sets  string `bson:"sets" json:"sets"`
	Reps  string `bson:"reps" json:"reps"`
	Rest  string `bson:"rest" json:"rest"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// DailyExercises is one day of the weekly workout plan. The day label is
// a freeform string produced by the generator and is not validated
// against calendar weekday names.
type DailyExercises struct {
	Day               string     `bson:"day" json:"day"`
	Focus             string     `bson:"focus" json:"focus"`
	Exercises         []Exercise `bson:"exercises" json:"exercises"`
	EstimatedCalories float64    `bson:"estimatedCalories" json:"estimatedCalories"`
}

// WorkoutPlan is the weekly workout half of a generated plan.
type WorkoutPlan struct {
	WeeklySplit         string           `bson:"weeklySplit" json:"weeklySplit"`
	DailyExercises      []DailyExercises `bson:"dailyExercises" json:"dailyExercises"`
	ProgressiveOverload string           `bson:"progressiveOverload" json:"progressiveOverload"`
	HomeAlternative     string           `bson:"homeAlternative" json:"homeAlternative"`
}

// Macros is the protein/carb/fat triple for a meal, in grams.
type Macros struct {
	P float64 `bson:"p" json:"p"`
	C float64 `bson:"c" json:"c"`
	F float64 `bson:"f" json:"f"`
}

// Meal is a single meal entry within a day.
type Meal struct {
	Type        MealType `bson:"type" json:"type"`
	Name        string   `bson:"name" json:"name"`
	Ingredients []string `bson:"ingredients" json:"ingredients"`
	Calories    float64  `bson:"calories" json:"calories"`
	Macros      Macros   `bson:"macros" json:"macros"`
}

// DayMeals is one day of the weekly meal plan.
type DayMeals struct {
	Day   string `bson:"day" json:"day"`
	Meals []Meal `bson:"meals" json:"meals"`
}

// MealPlan is the nutrition half of a generated plan.
type MealPlan struct {
	WeeklyMeals   []DayMeals `bson:"weeklyMeals" json:"weeklyMeals"`
	GroceryList   []string   `bson:"groceryList" json:"groceryList"`
	BudgetTips    []string   `bson:"budgetTips" json:"budgetTips"`
	CulturalNotes string     `bson:"culturalNotes" json:"culturalNotes"`
}

// Plan is the (workout, meal) pair returned by the generator for a
// given profile. Both halves are immutable once generated.
type Plan struct {
	Workout WorkoutPlan `bson:"workout" json:"workout"`
	Meal    MealPlan    `bson:"meal" json:"meal"`
}

// ForDay returns the workout entry whose day label equals day. When no
// label matches, the first entry is returned instead: day labels are
// freeform generator output, so a miss is substituted silently rather
// than treated as an error. ok is false only when the plan is empty.
func (w WorkoutPlan) ForDay(day string) (DailyExercises, bool) {
	for _, d := range w.DailyExercises {
		if d.Day == day {
			return d, true
		}
	}
	if len(w.DailyExercises) > 0 {
		return w.DailyExercises[0], true
	}
	return DailyExercises{}, false
}

// ForDay returns the meals entry for the given day label, with the same
// silent first-entry fallback as WorkoutPlan.ForDay.
func (m MealPlan) ForDay(day string) (DayMeals, bool) {
	for _, d := range m.WeeklyMeals {
		if d.Day == day {
			return d, true
		}
	}
	if len(m.WeeklyMeals) > 0 {
		return m.WeeklyMeals[0], true
	}
	return DayMeals{}, false
}
