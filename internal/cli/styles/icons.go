package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconPackage = "\uf187" // archive/package
	IconConfig  = "\ue615" // config
	IconFolder  = "\uf07b" // folder
	IconCursor  = "\uf054" // chevron-right
	IconWindow  = "\uf2d2" // window
	IconPlay    = "\uf04b" // play
)
