// Package models defines the persisted post entity.
package models
