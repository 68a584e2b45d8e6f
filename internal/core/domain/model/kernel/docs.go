// Package kernel contains the shared value objects of the domain model:
// identifiers and money. These types are immutable, validated at
// construction, and carry no infrastructure concerns, making them safe to
// use across aggregates, application services, and adapters.
package kernel
