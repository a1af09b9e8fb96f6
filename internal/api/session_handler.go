package api

import (
	"errors"
	"net/http"
	"time"

	"studentfit/fitness-planner/internal/domain"
	"studentfit/fitness-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the onboarding/progress flow of the session
// controller over HTTP.
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// --- Request/Response Structs ---

// OnboardingRequest carries the profile collected by the multi-step
// form. Required tags mirror the form's own (loose) validation: body
// metrics and the time questions must be present, everything else may
// be empty. BMI is never accepted from the client.
type OnboardingRequest struct {
	Age    int     `json:"age" binding:"required,gt=0"`
	Gender string  `json:"gender"`
	Height float64 `json:"height" binding:"required,gt=0"` // cm
	Weight float64 `json:"weight" binding:"required,gt=0"` // kg

	FitnessLevel      domain.FitnessLevel `json:"fitnessLevel"`
	MedicalConditions string              `json:"medicalConditions"`
	Goals             domain.Goal         `json:"goals"`
	Timeline          string              `json:"timeline"`

	ClassSchedule     string             `json:"classSchedule"`
	WorkoutTimePerDay int                `json:"workoutTimePerDay" binding:"required,gt=0"`
	SleepDuration     float64            `json:"sleepDuration" binding:"required,gt=0"`
	StressLevel       domain.StressLevel `json:"stressLevel"`

	DietType              domain.DietType `json:"dietType"`
	Cuisine               domain.Cuisine  `json:"cuisine"`
	Allergies             string          `json:"allergies"`
	DislikedFoods         string          `json:"dislikedFoods"`
	ReligiousRestrictions string          `json:"religiousRestrictions"`
	WeeklyBudget          string          `json:"weeklyBudget"`
	CookingAccess         string          `json:"cookingAccess"`

	GymAccess     bool   `json:"gymAccess"`
	Equipment     string `json:"equipment"`
	OutdoorAccess bool   `json:"outdoorAccess"`
}

func (r OnboardingRequest) toProfile() domain.Profile {
	return domain.Profile{
		Age:                   r.Age,
		Gender:                r.Gender,
		Height:                r.Height,
		Weight:                r.Weight,
		FitnessLevel:          r.FitnessLevel,
		MedicalConditions:     r.MedicalConditions,
		Goals:                 r.Goals,
		Timeline:              r.Timeline,
		ClassSchedule:         r.ClassSchedule,
		WorkoutTimePerDay:     r.WorkoutTimePerDay,
		SleepDuration:         r.SleepDuration,
		StressLevel:           r.StressLevel,
		DietType:              r.DietType,
		Cuisine:               r.Cuisine,
		Allergies:             r.Allergies,
		DislikedFoods:         r.DislikedFoods,
		ReligiousRestrictions: r.ReligiousRestrictions,
		WeeklyBudget:          r.WeeklyBudget,
		CookingAccess:         r.CookingAccess,
		GymAccess:             r.GymAccess,
		Equipment:             r.Equipment,
		OutdoorAccess:         r.OutdoorAccess,
	}
}

// LogProgressRequest is one daily self-report. The score is derived
// server-side.
type LogProgressRequest struct {
	Date             string  `json:"date"` // YYYY-MM-DD, defaults to today
	Weight           float64 `json:"weight" binding:"required,gt=0"`
	EnergyLevel      int     `json:"energyLevel" binding:"required,min=1,max=10"`
	WorkoutCompleted bool    `json:"workoutCompleted"`
}

// TodayView is the dashboard's day-of-plan selection: the entry whose
// day label matches today's weekday, or the first entry as a silent
// fallback.
type TodayView struct {
	Day     string                 `json:"day"`
	Workout *domain.DailyExercises `json:"workout,omitempty"`
	Meals   []domain.Meal          `json:"meals,omitempty"`
}

// SessionResponse is the session snapshot returned by all session
// endpoints.
type SessionResponse struct {
	SessionID string                  `json:"sessionId"`
	State     service.SessionState    `json:"state"`
	Profile   *domain.Profile         `json:"profile,omitempty"`
	Plan      *domain.Plan            `json:"plan,omitempty"`
	Progress  []domain.ProgressMetric `json:"progress"`
	Today     *TodayView              `json:"today,omitempty"`
}

func toSessionResponse(s *service.Session) SessionResponse {
	resp := SessionResponse{
		SessionID: s.ID,
		State:     s.State,
		Profile:   s.Profile,
		Plan:      s.Plan,
		Progress:  s.Progress,
	}
	if s.Plan != nil {
		today := time.Now().Weekday().String()
		view := &TodayView{Day: today}
		if workout, ok := s.Plan.Workout.ForDay(today); ok {
			view.Workout = &workout
		}
		if meals, ok := s.Plan.Meal.ForDay(today); ok {
			view.Meals = meals.Meals
		}
		resp.Today = view
	}
	return resp
}

// --- Handler Methods ---

// StartSession handles POST /api/session.
func (h *SessionHandler) StartSession(c *gin.Context) {
	session, err := h.sessions.Start(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to start session.")
		return
	}
	c.JSON(http.StatusCreated, toSessionResponse(session))
}

// GetSession handles GET /api/session/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, "Session not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load session.")
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// CompleteOnboarding handles POST /api/session/:id/onboarding. It
// blocks for the duration of the single generation call.
func (h *SessionHandler) CompleteOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessions.CompleteOnboarding(c.Request.Context(), c.Param("id"), req.toProfile())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, "Session not found")
		case errors.Is(err, service.ErrAlreadyOnboarded), errors.Is(err, service.ErrGenerationInProgress):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrPlanGeneration):
			abortWithError(c, http.StatusBadGateway, "Failed to generate plan. Please try again.")
		default:
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during onboarding.")
		}
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(session))
}

// LogProgress handles POST /api/session/:id/progress.
func (h *SessionHandler) LogProgress(c *gin.Context) {
	var req LogProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	metric, err := h.sessions.LogProgress(c.Request.Context(), c.Param("id"), service.ProgressEntry{
		Date:             req.Date,
		Weight:           req.Weight,
		EnergyLevel:      req.EnergyLevel,
		WorkoutCompleted: req.WorkoutCompleted,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, "Session not found")
		case errors.Is(err, service.ErrNoPlanYet):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to log progress.")
		}
		return
	}

	c.JSON(http.StatusCreated, metric)
}
