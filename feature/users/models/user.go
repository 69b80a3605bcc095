package models

import "record-importer/core/reconcile"

// User is one row of the user table.
type User struct {
	ID    int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name  string `gorm:"column:name" json:"name"`
	Email string `gorm:"column:email" json:"email"`
}

// TableName overrides the table name used by User.
func (User) TableName() string {
	return "user"
}

// Key returns the user id.
func (u User) Key() int {
	return u.ID
}

// ToRecord renders the user in its remote shape.
func (u User) ToRecord() reconcile.Record {
	return reconcile.Record{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}
