// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/relationship). This root
// package holds the sentinel errors and validation error type that every layer
// uses to classify failures.
package domain
