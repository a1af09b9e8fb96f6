package plangen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studentfit/fitness-planner/internal/domain"

	"github.com/stretchr/testify/require"
)

func testProfile() domain.Profile {
	p := domain.Profile{
		Age:               21,
		Gender:            "Female",
		Height:            165,
		Weight:            60,
		FitnessLevel:      domain.LevelBeginner,
		Goals:             domain.GoalGeneralFitness,
		WorkoutTimePerDay: 45,
		SleepDuration:     7,
		StressLevel:       domain.StressMedium,
		DietType:          domain.DietVegetarian,
		Cuisine:           domain.CuisineIndian,
		WeeklyBudget:      "$20-50",
		OutdoorAccess:     true,
	}
	p.DeriveBMI()
	return p
}

func planJSON(t *testing.T) string {
	t.Helper()
	plan := domain.Plan{
		Workout: domain.WorkoutPlan{
			WeeklySplit: "3-day full body",
			DailyExercises: []domain.DailyExercises{
				{Day: "Monday", Focus: "Full body", Exercises: []domain.Exercise{
					{Name: "Squat", Sets: "3", Reps: "10", Rest: "90s", Notes: "bodyweight"},
				}, EstimatedCalories: 250},
			},
			ProgressiveOverload: "Add a rep each week",
			HomeAlternative:     "Bodyweight circuit",
		},
		Meal: domain.MealPlan{
			WeeklyMeals: []domain.DayMeals{
				{Day: "Monday", Meals: []domain.Meal{
					{Type: domain.MealBreakfast, Name: "Poha", Ingredients: []string{"flattened rice", "peanuts"}, Calories: 320, Macros: domain.Macros{P: 9, C: 52, F: 10}},
				}},
			},
			GroceryList:   []string{"flattened rice", "peanuts"},
			BudgetTips:    []string{"cook in batches"},
			CulturalNotes: "North Indian breakfast staples.",
		},
	}
	data, err := json.Marshal(plan)
	require.NoError(t, err)
	return string(data)
}

func candidateBody(text string) string {
	resp := generateResponse{
		Candidates: []candidate{{Content: content{Parts: []part{{Text: text}}}}},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	profile := testProfile()
	want := planJSON(t)

	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.URL.Path, ":generateContent")
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateBody(want)))
	}))
	defer server.Close()

	gen := NewGeminiGenerator(Config{APIKey: "test-key", BaseURL: server.URL})
	plan, err := gen.Generate(context.Background(), profile)
	require.NoError(t, err)

	require.Equal(t, "3-day full body", plan.Workout.WeeklySplit)
	require.Len(t, plan.Meal.WeeklyMeals, 1)
	require.Equal(t, domain.MealBreakfast, plan.Meal.WeeklyMeals[0].Meals[0].Type)

	// The request must bind the output schema and embed the profile and
	// the fixed instruction points.
	require.Equal(t, "application/json", gotReq.GenerationConfig.ResponseMimeType)
	require.NotNil(t, gotReq.GenerationConfig.ResponseSchema)
	require.Contains(t, gotReq.GenerationConfig.ResponseSchema.Properties, "workout")
	require.Contains(t, gotReq.GenerationConfig.ResponseSchema.Properties, "meal")

	prompt := gotReq.Contents[0].Parts[0].Text
	require.Contains(t, prompt, "Practical for a student schedule")
	require.Contains(t, prompt, "Culturally appropriate (Indian cuisine)")
	require.Contains(t, prompt, "Safe given medical conditions: None")
	require.Contains(t, prompt, `"weeklyBudget": "$20-50"`)
}

func TestGeminiGenerator_Generate_FencedJSON(t *testing.T) {
	want := planJSON(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateBody("```json\n" + want + "\n```")))
	}))
	defer server.Close()

	gen := NewGeminiGenerator(Config{APIKey: "k", BaseURL: server.URL})
	plan, err := gen.Generate(context.Background(), testProfile())
	require.NoError(t, err)
	require.Equal(t, "Add a rep each week", plan.Workout.ProgressiveOverload)
}

func TestGeminiGenerator_Generate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	gen := NewGeminiGenerator(Config{APIKey: "k", BaseURL: server.URL})
	_, err := gen.Generate(context.Background(), testProfile())
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "429"))
}

func TestGeminiGenerator_Generate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	gen := NewGeminiGenerator(Config{APIKey: "k", BaseURL: server.URL})
	_, err := gen.Generate(context.Background(), testProfile())
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiGenerator_Generate_MalformedPlan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateBody("not json at all")))
	}))
	defer server.Close()

	gen := NewGeminiGenerator(Config{APIKey: "k", BaseURL: server.URL})
	_, err := gen.Generate(context.Background(), testProfile())
	require.Error(t, err)
}
