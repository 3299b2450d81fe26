package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconClock   = "\uf017" // clock

	// Theme answers
	IconMoon   = "\uf186" // moon
	IconSun    = "\uf185" // sun
	IconGlobe  = "\uf0ac" // globe (geo-aware schedule)
	IconLock   = "\uf023" // lock (pinned mode)
	IconSource = "\uf1e6" // plug (answering source)
)

// SideIcon returns the icon for a dark or light answer.
func SideIcon(dark bool) string {
	if dark {
		return IconMoon
	}
	return IconSun
}

// SideName returns "dark" or "light".
func SideName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
