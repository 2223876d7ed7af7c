package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/heatseek/attendance-system/internal/core/domain"
)

// sessionRow is the single-row table holding the persisted session. The
// profile is kept as serialized JSON, mirroring how the token and profile are
// always written and cleared as one unit.
type sessionRow struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	Profile   string `gorm:"not null"`
	UpdatedAt time.Time
}

func (sessionRow) TableName() string { return "sessions" }

// singletonRowID pins the table to one row: a save overwrites, never appends.
const singletonRowID = 1

// SessionStorage implements ports.SessionStorage on sqlite.
type SessionStorage struct {
	db *gorm.DB
}

func NewSessionStorage(db *gorm.DB) (*SessionStorage, error) {
	if err := db.AutoMigrate(&sessionRow{}); err != nil {
		return nil, err
	}
	return &SessionStorage{db: db}, nil
}

// Save persists token and profile as one row, replacing any prior session.
func (s *SessionStorage) Save(ctx context.Context, token string, employee domain.Employee) error {
	profile, err := json.Marshal(employee)
	if err != nil {
		return err
	}
	row := sessionRow{ID: singletonRowID, Token: token, Profile: string(profile)}
	return s.db.WithContext(ctx).Save(&row).Error
}

// Load returns the persisted session. An absent row, an empty half, or a
// profile that no longer parses all report an absent session rather than a
// partial one.
func (s *SessionStorage) Load(ctx context.Context) (string, *domain.Employee, error) {
	var row sessionRow
	result := s.db.WithContext(ctx).First(&row, singletonRowID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", nil, nil
	}
	if result.Error != nil {
		return "", nil, result.Error
	}
	if row.Token == "" || row.Profile == "" {
		return "", nil, nil
	}

	var employee domain.Employee
	if err := json.Unmarshal([]byte(row.Profile), &employee); err != nil {
		return "", nil, nil
	}
	if employee.EmployeeID == "" {
		return "", nil, nil
	}
	return row.Token, &employee, nil
}

// Clear removes the persisted session. Clearing an already-absent session is
// not an error.
func (s *SessionStorage) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Delete(&sessionRow{}, singletonRowID).Error
}
