package model

// LayoutConfig holds the fixed layout constants shared by the packer,
// the containment checker and the renderer.
type LayoutConfig struct {
	OriginX       float64 `json:"origin_x"`       // Anchorage left edge on screen
	OriginY       float64 `json:"origin_y"`       // Anchorage top edge on screen
	ScaleFactor   float64 `json:"scale_factor"`   // Unit dimensions -> screen units
	ColumnGap     float64 `json:"column_gap"`     // Gap between anchorage and first column
	ColumnSpacing float64 `json:"column_spacing"` // Gap between columns
	VesselSpacing float64 `json:"vessel_spacing"` // Vertical gap between vessels in a column
	Columns       int     `json:"columns"`        // Default number of layout columns
	Epsilon       float64 `json:"epsilon"`        // Edge tolerance for spatial tests
}

func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		OriginX:       32,
		OriginY:       162,
		ScaleFactor:   20,
		ColumnGap:     50,
		ColumnSpacing: 20,
		VesselSpacing: 10,
		Columns:       3,
		Epsilon:       0.001,
	}
}

// DefaultAPIBaseURL is used when neither the config file nor the
// environment names a scenario endpoint.
const DefaultAPIBaseURL = "https://esa.instech.no/"

// AppConfig holds application-wide preferences.
type AppConfig struct {
	APIBaseURL     string       `json:"api_base_url"`
	Layout         LayoutConfig `json:"layout"`
	LogLevel       string       `json:"log_level"` // "debug", "info", "warn", "error"
	LastExportDir  string       `json:"last_export_dir"`
	RecentScenario []string     `json:"recent_scenarios"`
	Theme          string       `json:"theme"` // "light", "dark", "system"
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		APIBaseURL:     DefaultAPIBaseURL,
		Layout:         DefaultLayoutConfig(),
		LogLevel:       "info",
		RecentScenario: []string{},
		Theme:          "system",
	}
}

// Normalize fills zero values left by older or hand-edited config files.
func (c *AppConfig) Normalize() {
	d := DefaultAppConfig()
	if c.APIBaseURL == "" {
		c.APIBaseURL = d.APIBaseURL
	}
	if c.Layout.ScaleFactor <= 0 {
		c.Layout.ScaleFactor = d.Layout.ScaleFactor
	}
	if c.Layout.Columns < 1 {
		c.Layout.Columns = d.Layout.Columns
	}
	if c.Layout.Epsilon <= 0 {
		c.Layout.Epsilon = d.Layout.Epsilon
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.RecentScenario == nil {
		c.RecentScenario = []string{}
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
}
