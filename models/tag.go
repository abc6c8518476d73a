package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tag A lowercase label, globally unique by name, shared across projects
// and annotations.
type Tag struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

// ResolveTag Find the tag with the given name (case-insensitive) or create it.
// Names are normalized to lowercase before lookup, so ResolveTag("Cat") and
// ResolveTag("cat") return the same row. The unique index on name backs this
// up: if a concurrent caller creates the tag between our lookup and insert,
// the insert fails and we return the winner instead.
func ResolveTag(db *gorm.DB, name string) (Tag, error) {
	normalized := strings.ToLower(name)

	var tag Tag
	err := db.Where("name = ?", normalized).First(&tag).Error
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Tag{}, err
	}

	tag = Tag{ID: uuid.NewString(), Name: normalized}
	if createErr := db.Create(&tag).Error; createErr != nil {
		// On mysql the re-lookup must be a locking read: under REPEATABLE
		// READ a plain select runs against the transaction snapshot and can
		// miss the row the winner just committed.
		fallback := db
		if db.Dialector.Name() == "mysql" {
			fallback = db.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var existing Tag
		if lookupErr := fallback.Where("name = ?", normalized).First(&existing).Error; lookupErr == nil {
			return existing, nil
		}
		return Tag{}, createErr
	}
	return tag, nil
}
