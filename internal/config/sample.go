package config

// SampleConfig returns a commented configuration listing every setting
func SampleConfig() string {
	return `# GameNative TUI configuration
version: "1.0"

# Supabase project holding the Ko-fi supporter table.
# SUPABASE_URL and SUPABASE_ANON_KEY override these.
supabase:
  url: ""          # e.g. https://xyzcompany.supabase.co
  anon_key: ""
  table: kofi_supporters
  timeout: 15s

# Boot splash
splash:
  tip_interval: 4s
  tips_file: ""    # YAML file with a "tips" list; empty uses the built-in tips
  ready_file: ""   # the splash closes once this file exists
  theme: default   # default | high-contrast | minimal

output:
  default_format: text   # text | json | markdown | csv
  color_mode: auto       # auto | always | never
  verbose: false
  no_emoji: false
  log_file: ""           # log destination while a TUI is running
`
}

// MinimalSampleConfig returns the smallest useful configuration
func MinimalSampleConfig() string {
	return `version: "1.0"
supabase:
  url: ""
  anon_key: ""
`
}
