// Package dashboard serves GET /api/stats: publication, member, event and
// graduated-member counts.
package dashboard
