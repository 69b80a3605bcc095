// Package models defines the persisted user entity.
package models
