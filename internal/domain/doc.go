// Package domain contains shared domain types used across the task packages.
// Task-specific types live in sub-packages (domain/pathguard, domain/task,
// domain/tabular). This root package holds sentinel errors and the
// validation error type shared by every layer.
package domain
