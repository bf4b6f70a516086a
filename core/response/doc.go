// Package response writes the JSON envelope shared by every endpoint:
// {"success": true, ...} on success and {"success": false, "error": "..."} on failure.
package response
