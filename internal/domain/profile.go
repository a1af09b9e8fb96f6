package domain

// FitnessLevel describes the user's self-assessed training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "Beginner"
	LevelIntermediate FitnessLevel = "Intermediate"
	LevelAdvanced     FitnessLevel = "Advanced"
)

// Goal is the primary outcome the user wants from the plan.
type Goal string

const (
	GoalWeightLoss     Goal = "Weight loss"
	GoalMuscleGain     Goal = "Muscle gain"
	GoalEndurance      Goal = "Endurance"
	GoalGeneralFitness Goal = "General fitness"
	GoalFatLossToning  Goal = "Fat loss + muscle toning"
)

// StressLevel describes the user's typical stress.
type StressLevel string

const (
	StressLow    StressLevel = "Low"
	StressMedium StressLevel = "Medium"
	StressHigh   StressLevel = "High"
)

// DietType describes the dietary pattern the meal plan must respect.
type DietType string

const (
	DietVegetarian    DietType = "Vegetarian"
	DietNonVegetarian DietType = "Non-vegetarian"
	DietVegan         DietType = "Vegan"
)

// Cuisine is the cultural cuisine preference for generated meals.
type Cuisine string

const (
	CuisineIndian        Cuisine = "Indian"
	CuisineMediterranean Cuisine = "Mediterranean"
	CuisineAsian         Cuisine = "Asian"
	CuisineWestern       Cuisine = "Western"
	CuisineOther         Cuisine = "Other"
)

// Profile is the structured description of a user's body metrics, goals,
// schedule, and preferences, collected once at onboarding. It is pure
// data: the only derived field is BMI, which is frozen at submission
// time and never recomputed afterwards.
type Profile struct {
	Age    int     `bson:"age" json:"age"`
	Gender string  `bson:"gender" json:"gender"`
	Height float64 `bson:"height" json:"height"` // cm
	Weight float64 `bson:"weight" json:"weight"` // kg
	BMI    float64 `bson:"bmi" json:"bmi"`

	FitnessLevel      FitnessLevel `bson:"fitnessLevel" json:"fitnessLevel"`
	MedicalConditions string       `bson:"medicalConditions" json:"medicalConditions"`
	Goals             Goal         `bson:"goals" json:"goals"`
	Timeline          string       `bson:"timeline" json:"timeline"`

	ClassSchedule     string      `bson:"classSchedule" json:"classSchedule"`
	WorkoutTimePerDay int         `bson:"workoutTimePerDay" json:"workoutTimePerDay"` // minutes
	SleepDuration     float64     `bson:"sleepDuration" json:"sleepDuration"`         // hours
	StressLevel       StressLevel `bson:"stressLevel" json:"stressLevel"`

	DietType              DietType `bson:"dietType" json:"dietType"`
	Cuisine               Cuisine  `bson:"cuisine" json:"cuisine"`
	Allergies             string   `bson:"allergies" json:"allergies"`
	DislikedFoods         string   `bson:"dislikedFoods" json:"dislikedFoods"`
	ReligiousRestrictions string   `bson:"religiousRestrictions" json:"religiousRestrictions"`
	WeeklyBudget          string   `bson:"weeklyBudget" json:"weeklyBudget"`
	CookingAccess         string   `bson:"cookingAccess" json:"cookingAccess"`

	GymAccess     bool   `bson:"gymAccess" json:"gymAccess"`
	Equipment     string `bson:"equipment" json:"equipment"`
	OutdoorAccess bool   `bson:"outdoorAccess" json:"outdoorAccess"`
}

// ComputeBMI returns weight(kg) / (height(cm)/100)^2. Callers derive the
// Profile.BMI field from this exactly once, at onboarding submission.
func ComputeBMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// DeriveBMI freezes the BMI into the profile.
func (p *Profile) DeriveBMI() {
	p.BMI = ComputeBMI(p.Weight, p.Height)
}
