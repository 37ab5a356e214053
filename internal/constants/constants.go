package constants

const (
	Version        = `0.1.0`
	AppName        = `activities`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.activities/`
	LogFile        = `activities.log`
	EnvPrefix      = `ACTIVITIES`

	PanelTitle      = `Activities`
	EmptyStateText  = `No activities found. Create some markdown files to see them here!`
	SettingsTitle   = `Activities Settings`
	MarkdownFileExt = `.md`
)
