// Package models defines the publication record and the publications document.
package models
