// Package constants holds identifiers shared between layers.
package constants

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderKafka  = "kafka"
	PubSubProviderGoogle = "google"
)

// Domain event types published after successful writes.
const (
	EventUserCreated       = "user.created"
	EventUserUpdated       = "user.updated"
	EventCategoryCreated   = "category.created"
	EventCategoryUpdated   = "category.updated"
	EventCategoryDeleted   = "category.deleted"
	EventProductCreated    = "product.created"
	EventProductUpdated    = "product.updated"
	EventProductDeleted    = "product.deleted"
	EventInvestmentCreated = "investment.created"
	EventInvestmentUpdated = "investment.updated"
	EventInvestmentDeleted = "investment.deleted"
	EventPaybackRecorded   = "investment.payback_recorded"
)

// Product stats cache fields.
const (
	StatsAveragePrice   = "average_price"
	StatsTotalPVValue   = "total_pv_value"
	StatsHighestPriced  = "highest_priced"
	StatsPriceRanges    = "price_ranges"
	ProductStatsHashKey = "stats:products"

	ProductStatsGenerationKey = "stats:products:generation"
)

// Listing defaults.
const (
	DefaultPage         = 1
	DefaultPageLimit    = 10
	DefaultMaxPageLimit = 100
)
