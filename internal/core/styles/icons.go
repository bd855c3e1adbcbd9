package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

// Notification icons, one per variant.
var (
	IconNotifySuccess = "" // nf-fa-check_circle
	IconNotifyInfo    = "" // nf-fa-info_circle
	IconNotifyWarning = "" // nf-fa-warning
	IconNotifyDanger  = "" // nf-fa-times_circle
)

var (
	IconCheck   = ""
	IconCross   = ""
	IconPause   = ""
	IconProfile = ""
	IconLink    = ""
)
