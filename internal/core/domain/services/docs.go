// Package services contains the domain services of the order lifecycle:
// payment methods, the shipment service, and the failure policy that makes
// their simulated outcomes injectable.
//
// Payment and shipment attempts fail independently with a fixed probability
// (1/20 by default). The randomness lives behind the FailurePolicy
// capability so tests and demos can force deterministic outcomes.
package services
