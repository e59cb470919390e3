// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/aizenverse/aizen/color"
	"github.com/aizenverse/aizen/constant"
	"github.com/aizenverse/aizen/key"
	"github.com/aizenverse/aizen/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.APIBaseURL, constant.DefaultAPIBaseURL, "Base URL of the remote anime API")
	register(key.APITimeout, 10, "Timeout for a single API request, in seconds")
	register(key.APIRateLimit, 0, "Maximum API requests per second.\n0 disables client-side throttling")
	register(key.APICacheTTL, 30, "How long listing, search and detail responses are cached, in minutes.\n0 disables the response cache")
	register(key.CacheRedisAddr, "", "Redis address (host:port) for the response cache.\nThe filesystem cache is used when empty")
	register(key.CacheRedisPassword, "", "Redis password for the response cache")
	register(key.CacheRedisDB, 0, "Redis database index for the response cache")
	register(key.ProxyURL, constant.DefaultProxyURL, "Video proxy service that stream URLs are routed through")
	register(key.ProxyOrigin, "", "Origin forwarded to the video proxy.\nLeft out of proxied URLs when empty")
	register(key.Player, "mpv", "Player used by the watch command.\nAvailable options are: mpv, browser")
	register(key.PlayerServer, "vidcloud", "Streaming server requested from the API.\nAvailable options are: vidstreaming, vidcloud, streamtape")
	register(key.PlayerCategory, "sub", "Default audio category.\nAvailable options are: sub, dub")
	register(key.PlayerEmbedURL, constant.DefaultEmbedURL, "Embeddable player URL template.\nReceives the embed id and the category")
	register(key.HistorySaveOnWatch, true, "Record watch history and continue-watching entries")
	register(key.HistoryMax, 50, "Maximum number of watch history entries")
	register(key.HistoryContinueMax, 20, "Maximum number of continue-watching entries")
	register(key.HomeFallback, true, "Show the built-in fallback catalog on the landing page when the API is unreachable")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUICarouselInterval, 6, "Seconds between hero carousel slides")
	register(key.WebAddress, "localhost:4000", "Address the web front-end listens on")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsMaxSize, 10, "Maximum size of a log file in megabytes before it is rotated")
	register(key.LogsMaxBackups, 3, "Number of rotated log files to keep")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
