// Package services implements the driving port interfaces.
// Services contain the core business logic: template selection, vessel-class
// adjustment, term merging, compliance checking and document rendering. They
// orchestrate calls to driven ports (stores, serializers, rate estimator).
//
// Services are pure Go with no CGO or external dependencies.
package services
