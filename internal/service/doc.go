// Package service implements the splitbill Connect services.
package service
