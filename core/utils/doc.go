// Package utils provides common utility functions for the lab-admin application.
// It includes helpers for lenient type conversion of hand-edited JSON values and
// sanitizing operator-supplied text before it is stored.
package utils
