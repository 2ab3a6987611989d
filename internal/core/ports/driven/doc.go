// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DirectoryGateway: Issues the remote search request and parses records
//   - ConfigStore: Application configuration
//
// # Gate-dependent Interfaces
//
// Exactly one gating strategy is active per run, so only the matching
// interface is wired:
//
//   - ChallengeWidgetFactory / ChallengeWidget: Bot-verification widget
//     (token gate)
//   - SessionGateway: Session probe, login and logout (session gate)
//
// # Optional Interfaces
//
//   - HistoryStore: Local search history. Can be nil; attempts are then
//     simply not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
