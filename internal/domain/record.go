package domain

// UserRecord is the full persisted tuple for one user identifier. The
// id is an opaque, client-generated token, not a stable account id. The
// whole record is replaced on every write; there are no partial updates.
type UserRecord struct {
	ID          string           `bson:"_id" json:"id"`
	Profile     Profile          `bson:"profile" json:"profile"`
	CurrentPlan Plan             `bson:"currentPlan" json:"current_plan"`
	Progress    []ProgressMetric `bson:"progress" json:"progress"`
}
