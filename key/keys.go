// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Remote anime API - these keys control how catalog, detail and stream data is fetched.
const (
	APIBaseURL   = "api.base_url"
	APITimeout   = "api.timeout"
	APIRateLimit = "api.rate_limit"
	APICacheTTL  = "api.cache_ttl"
)

// Response cache backend.
const (
	CacheRedisAddr     = "cache.redis.addr"
	CacheRedisPassword = "cache.redis.password"
	CacheRedisDB       = "cache.redis.db"
)

// Video proxy.
const (
	ProxyURL    = "proxy.url"
	ProxyOrigin = "proxy.origin"
)

// Media playback - these keys select the player backend and the stream variant requested from the API.
const (
	Player         = "player.default"
	PlayerServer   = "player.server"
	PlayerCategory = "player.category"
	PlayerEmbedURL = "player.embed_url"
)

// History tracking - these keys configure the bounded recency lists.
const (
	HistorySaveOnWatch = "history.save_on_watch"
	HistoryMax         = "history.max"
	HistoryContinueMax = "history.continue_max"
)

// Landing page.
const (
	HomeFallback = "home.fallback"
)

// Search interaction.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's styling and timing.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUICarouselInterval   = "tui.carousel_interval"
)

// Web front-end served by `aizen serve`.
const (
	WebAddress = "web.address"
)

// Logging infrastructure.
const (
	LogsWrite      = "logs.write"
	LogsLevel      = "logs.level"
	LogsJson       = "logs.json"
	LogsMaxSize    = "logs.max_size"
	LogsMaxBackups = "logs.max_backups"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
