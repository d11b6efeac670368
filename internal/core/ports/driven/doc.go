// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TemplateStore: Template catalog persistence (read at startup)
//   - CharterRecordStore: Append-only log of saved charters
//   - DocumentSerializer: Turns a rendered document into file bytes
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - RateEstimator: Placeholder freight estimate. Never consulted by
//     the merge or render steps.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
