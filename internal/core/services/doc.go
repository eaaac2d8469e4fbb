// Package services implements the driving ports on top of the driven
// ones. Services hold the use-case logic that stays client-side:
// interview session bookkeeping, pre-flight validation, and
// filtering/sorting of already-fetched listings. Everything of real
// computational consequence (scoring, ranking, tradeoff analysis)
// happens behind the API boundary.
package services
