package domain

// ProgressMetric is one daily self-reported log entry. Entries are
// appended, never edited or deleted; the score is derived once at log
// time and never recomputed.
type ProgressMetric struct {
	Date             string  `bson:"date" json:"date"` // YYYY-MM-DD
	Weight           float64 `bson:"weight" json:"weight"`
	EnergyLevel      int     `bson:"energyLevel" json:"energyLevel"` // 1-10
	WorkoutCompleted bool    `bson:"workoutCompleted" json:"workoutCompleted"`
	Score            int     `bson:"score" json:"score"`
}

// ComputeScore returns energyLevel*10 plus a 50 point bonus for a
// completed workout. For energy levels in [1,10] the result is in
// [10,150].
func ComputeScore(energyLevel int, workoutCompleted bool) int {
	score := energyLevel * 10
	if workoutCompleted {
		score += 50
	}
	return score
}
