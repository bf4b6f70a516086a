// Package events manages dataset/events.json. New events get the next e### id
// and are appended.
package events
