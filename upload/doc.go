// Package upload posts rendered images to the Pixl platform.
//
// The client sends multipart form uploads authenticated with a bearer API
// key and maps the platform's status codes to actionable error messages.
package upload
