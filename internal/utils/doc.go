// Package utils provides small helpers shared by the client and the
// development server: the resty client wrapper, JSON response writing, and
// identifier generation.
package utils
