// Package request binds and validates JSON request bodies with validator/v10.
package request
