package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyAccount is a user's points balance and the highest level reached.
// Level is a high-water mark: losing points never lowers it.
type LoyaltyAccount struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	Points    int
	Level     int
	Version   int64 // Incremented on every persisted change, used for conditional updates.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PointsChange describes the outcome of applying a delta to an account.
type PointsChange struct {
	PreviousPoints int
	PreviousLevel  int
	Points         int
	Level          int
	DerivedLevel   int
	LeveledUp      bool
}

// Changed reports whether the points balance moved.
func (c PointsChange) Changed() bool {
	return c.Points != c.PreviousPoints
}

// DerivedLevel returns floor(points / pointsPerLevel).
func DerivedLevel(points, pointsPerLevel int) int {
	if points <= 0 || pointsPerLevel <= 0 {
		return 0
	}

	return points / pointsPerLevel
}

// ApplyDelta adds delta to the balance with a floor of zero and raises the level when the
// derived level exceeds the stored one.
func (a *LoyaltyAccount) ApplyDelta(delta, pointsPerLevel int) PointsChange {
	change := PointsChange{
		PreviousPoints: a.Points,
		PreviousLevel:  a.Level,
	}

	a.Points = max(0, a.Points+delta)
	change.Points = a.Points
	change.DerivedLevel = DerivedLevel(a.Points, pointsPerLevel)

	if change.DerivedLevel > a.Level {
		a.Level = change.DerivedLevel
		change.LeveledUp = true
	}
	change.Level = a.Level

	return change
}

// PointsToNextLevel returns how many points are missing to reach the next level boundary.
func (a *LoyaltyAccount) PointsToNextLevel(pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		return 0
	}

	return pointsPerLevel - a.Points%pointsPerLevel
}
