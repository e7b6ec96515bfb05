package entity

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/faceset/faceset/pkg/rnd"
)

// Session represents one bounded sampling run.
type Session struct {
	ID          uint       `gorm:"primary_key" json:"-"`
	SessionUID  string     `gorm:"type:VARBINARY(42);unique_index;" json:"UID"`
	Target      int        `json:"Target"`
	Collected   int        `json:"Collected"`
	CompletedAt *time.Time `json:"CompletedAt,omitempty"`
	CreatedAt   time.Time  `json:"CreatedAt"`
	UpdatedAt   time.Time  `json:"UpdatedAt"`
}

// TableName returns the entity database table name.
func (Session) TableName() string {
	return "sessions"
}

// BeforeCreate creates a random UID if needed before inserting a new row.
func (m *Session) BeforeCreate(scope *gorm.Scope) error {
	if rnd.IsUID(m.SessionUID, 's') {
		return nil
	}

	return scope.SetColumn("SessionUID", rnd.UID('s'))
}

// NewSession creates a new session entity.
func NewSession(target int) *Session {
	return &Session{
		SessionUID: rnd.UID('s'),
		Target:     target,
	}
}

// Create inserts the session into the database.
func (m *Session) Create() error {
	return Db().Create(m).Error
}

// Save updates the session in the database.
func (m *Session) Save() error {
	return Db().Save(m).Error
}

// Complete marks the session as completed with the given crop count.
func (m *Session) Complete(collected int) error {
	now := time.Now().UTC()
	m.Collected = collected
	m.CompletedAt = &now

	return m.Save()
}

// RecentSessions returns the most recent sessions, newest first.
func RecentSessions(limit int) (result []Session, err error) {
	err = Db().Order("created_at DESC").Limit(limit).Find(&result).Error

	return result, err
}
