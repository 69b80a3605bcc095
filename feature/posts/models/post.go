package models

import "record-importer/core/reconcile"

// Post is one row of the post table.
// OwnerID refers to a user id; the reference is not enforced.
type Post struct {
	ID      int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	OwnerID int    `gorm:"column:owner_id" json:"userId"`
	Title   string `gorm:"column:title" json:"title"`
	Body    string `gorm:"column:body" json:"body"`
}

// TableName overrides the table name used by Post.
func (Post) TableName() string {
	return "post"
}

// Key returns the post id.
func (p Post) Key() int {
	return p.ID
}

// ToRecord renders the post in its remote shape.
func (p Post) ToRecord() reconcile.Record {
	return reconcile.Record{
		"id":     p.ID,
		"userId": p.OwnerID,
		"title":  p.Title,
		"body":   p.Body,
	}
}
