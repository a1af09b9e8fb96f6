package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func weeklyWorkout() WorkoutPlan {
	return WorkoutPlan{
		WeeklySplit: "Push/Pull/Legs",
		DailyExercises: []DailyExercises{
			{Day: "Monday", Focus: "Push", EstimatedCalories: 300},
			{Day: "Wednesday", Focus: "Pull", EstimatedCalories: 320},
			{Day: "Friday", Focus: "Legs", EstimatedCalories: 350},
		},
	}
}

func TestWorkoutPlan_ForDay_Match(t *testing.T) {
	w := weeklyWorkout()
	d, ok := w.ForDay("Wednesday")
	require.True(t, ok)
	require.Equal(t, "Pull", d.Focus)
}

func TestWorkoutPlan_ForDay_FallsBackToFirst(t *testing.T) {
	w := weeklyWorkout()

	// Generator labels are freeform; a weekday with no entry falls back
	// to the first entry instead of erroring.
	d, ok := w.ForDay("Sunday")
	require.True(t, ok)
	require.Equal(t, "Push", d.Focus)

	d, ok = w.ForDay("Day 3 - Full Body")
	require.True(t, ok)
	require.Equal(t, "Monday", d.Day)
}

func TestWorkoutPlan_ForDay_Empty(t *testing.T) {
	_, ok := WorkoutPlan{}.ForDay("Monday")
	require.False(t, ok)
}

func TestMealPlan_ForDay(t *testing.T) {
	m := MealPlan{
		WeeklyMeals: []DayMeals{
			{Day: "Monday", Meals: []Meal{{Type: MealBreakfast, Name: "Oats"}}},
			{Day: "Tuesday", Meals: []Meal{{Type: MealBreakfast, Name: "Poha"}}},
		},
	}

	d, ok := m.ForDay("Tuesday")
	require.True(t, ok)
	require.Equal(t, "Poha", d.Meals[0].Name)

	d, ok = m.ForDay("Saturday")
	require.True(t, ok)
	require.Equal(t, "Monday", d.Day)

	_, ok = MealPlan{}.ForDay("Monday")
	require.False(t, ok)
}
