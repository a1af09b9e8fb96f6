package repository

import (
	"context"
	"testing"

	"studentfit/fitness-planner/internal/domain"

	"github.com/stretchr/testify/require"
)

func sampleRecord(id string) *domain.UserRecord {
	return &domain.UserRecord{
		ID: id,
		Profile: domain.Profile{
			Age:    21,
			Height: 180,
			Weight: 80,
			BMI:    domain.ComputeBMI(80, 180),
			Goals:  domain.GoalMuscleGain,
		},
		CurrentPlan: domain.Plan{
			Workout: domain.WorkoutPlan{
				WeeklySplit: "Upper/Lower",
				DailyExercises: []domain.DailyExercises{
					{Day: "Monday", Focus: "Upper", Exercises: []domain.Exercise{
						{Name: "Push-up", Sets: "3", Reps: "12", Rest: "60s"},
					}, EstimatedCalories: 280},
				},
			},
			Meal: domain.MealPlan{
				WeeklyMeals: []domain.DayMeals{
					{Day: "Monday", Meals: []domain.Meal{
						{Type: domain.MealBreakfast, Name: "Oats", Ingredients: []string{"oats", "milk"}, Calories: 350, Macros: domain.Macros{P: 15, C: 55, F: 8}},
					}},
				},
				GroceryList:   []string{"oats", "milk"},
				BudgetTips:    []string{"buy in bulk"},
				CulturalNotes: "Western staples.",
			},
		},
		Progress: []domain.ProgressMetric{},
	}
}

func TestInMemoryRepo_RoundTrip(t *testing.T) {
	repo := NewInMemoryUserRecordRepository()
	ctx := context.Background()

	record := sampleRecord("abc123")
	require.NoError(t, repo.Upsert(ctx, record))

	got, err := repo.GetByID(ctx, "abc123")
	require.NoError(t, err)
	require.Equal(t, record, got)
}

func TestInMemoryRepo_NotFound(t *testing.T) {
	repo := NewInMemoryUserRecordRepository()

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryRepo_UpsertOverwrites(t *testing.T) {
	repo := NewInMemoryUserRecordRepository()
	ctx := context.Background()

	r1 := sampleRecord("abc123")
	require.NoError(t, repo.Upsert(ctx, r1))

	r2 := sampleRecord("abc123")
	r2.Profile.Weight = 78.5
	r2.Progress = []domain.ProgressMetric{
		{Date: "2025-03-01", Weight: 78.5, EnergyLevel: 7, WorkoutCompleted: true, Score: 120},
	}
	require.NoError(t, repo.Upsert(ctx, r2))

	got, err := repo.GetByID(ctx, "abc123")
	require.NoError(t, err)
	// Replace, not merge: r1 is gone entirely.
	require.Equal(t, r2, got)
	require.Equal(t, 1, repo.Len())
}
